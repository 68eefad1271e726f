package helpers

import (
	"sort"
)

// DefaultOperator is used when compare is called with two operands.
const DefaultOperator = "==="

var operators = map[string]func(l, r interface{}) bool{
	"==":  looseEqual,
	"===": strictEqual,
	"!=": func(l, r interface{}) bool {
		return !looseEqual(l, r)
	},
	"!==": func(l, r interface{}) bool {
		return !strictEqual(l, r)
	},
	"<":  less,
	">":  greater,
	"<=": lessOrEqual,
	">=": greaterOrEqual,
	"typeof": func(l, r interface{}) bool {
		return looseEqual(typeOf(l), r)
	},
}

// Operators returns the operator tokens compare understands, sorted.
func Operators() []string {
	ops := make([]string, 0, len(operators))
	for op := range operators {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Compare evaluates left operator right and renders the matching branch.
// args is either (left, operator, right) or (left, right), in which case the
// operator defaults to "===".
func Compare(options Block, args ...interface{}) (string, error) {
	if len(args) < 2 {
		return "", NewInvalidArgumentsError("compare", 2, len(args))
	}

	left, right := args[0], args[1]
	operator := DefaultOperator
	if len(args) > 2 {
		operator = stringOf(args[1])
		right = args[2]
	}

	test, ok := operators[operator]
	if !ok {
		return "", NewUnknownOperatorError("compare", operator)
	}

	return choose(test(left, right), options), nil
}
