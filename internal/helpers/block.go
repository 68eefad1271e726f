package helpers

// Block carries the two render callbacks of a block helper.
type Block interface {
	Fn() string
	Inverse() string
}

// HashBlock is a Block that also exposes the hash arguments of the call.
type HashBlock interface {
	Block
	HashProp(name string) interface{}
}

// Iterator renders the block body once with the given context.
type Iterator interface {
	FnWith(ctx interface{}) string
}

// Branches adapts two plain functions to Block. A nil function renders "".
type Branches struct {
	Then func() string
	Else func() string
}

// Fn renders the then branch.
func (b Branches) Fn() string {
	if b.Then == nil {
		return ""
	}
	return b.Then()
}

// Inverse renders the else branch.
func (b Branches) Inverse() string {
	if b.Else == nil {
		return ""
	}
	return b.Else()
}

// IteratorFunc adapts a function to Iterator.
type IteratorFunc func(ctx interface{}) string

// FnWith calls f(ctx).
func (f IteratorFunc) FnWith(ctx interface{}) string {
	return f(ctx)
}

// choose invokes exactly one branch of b.
func choose(ok bool, b Block) string {
	if ok {
		return b.Fn()
	}
	return b.Inverse()
}
