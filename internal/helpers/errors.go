package helpers

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Sentinel errors, matchable with errors.Is.
var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrUnknownOperator  = errors.New("unknown operator")
)

// Error messages
const (
	ErrMsgTooFewArguments = "helper called with too few arguments"
	ErrMsgUnknownOperator = "helper does not know the operator"
)

// Error codes
const (
	ErrCodeArguments = "TEMPLATE_HELPER_ARGS"
	ErrCodeOperator  = "TEMPLATE_HELPER_OPERATOR"
)

// Metadata keys
const (
	MetaKeyHelper   = "helper"
	MetaKeyOperator = "operator"
	MetaKeyWant     = "want"
	MetaKeyGot      = "got"
)

// NewInvalidArgumentsError reports a helper invoked with fewer operands than it needs.
func NewInvalidArgumentsError(helper string, want, got int) error {
	return cuserr.WrapStdError(ErrInvalidArguments, ErrCodeArguments, ErrMsgTooFewArguments).
		WithMetadata(MetaKeyHelper, helper).
		WithMetadata(MetaKeyWant, strconv.Itoa(want)).
		WithMetadata(MetaKeyGot, strconv.Itoa(got))
}

// NewUnknownOperatorError reports an operator token outside the compare table.
func NewUnknownOperatorError(helper, operator string) error {
	return cuserr.WrapStdError(ErrUnknownOperator, ErrCodeOperator, ErrMsgUnknownOperator).
		WithMetadata(MetaKeyHelper, helper).
		WithMetadata(MetaKeyOperator, operator)
}
