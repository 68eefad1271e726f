package helpers

// HashCompare is the hash argument holding the comparison value of the
// if_* and unless_* helpers: {{#if_gt count compare=10}}.
const HashCompare = "compare"

func hashTest(context interface{}, options HashBlock, test func(a, b interface{}) bool) bool {
	return test(context, options.HashProp(HashCompare))
}

// IfEq renders the then branch when context is strictly equal to the compare hash value.
func IfEq(context interface{}, options HashBlock) string {
	return choose(hashTest(context, options, strictEqual), options)
}

// UnlessEq is IfEq with the branches swapped.
func UnlessEq(context interface{}, options HashBlock) string {
	return choose(!hashTest(context, options, strictEqual), options)
}

// IfGt renders the then branch when context > compare.
func IfGt(context interface{}, options HashBlock) string {
	return choose(hashTest(context, options, greater), options)
}

// UnlessGt is IfGt with the branches swapped.
func UnlessGt(context interface{}, options HashBlock) string {
	return choose(!hashTest(context, options, greater), options)
}

// IfLt renders the then branch when context < compare.
func IfLt(context interface{}, options HashBlock) string {
	return choose(hashTest(context, options, less), options)
}

// UnlessLt is IfLt with the branches swapped.
func UnlessLt(context interface{}, options HashBlock) string {
	return choose(!hashTest(context, options, less), options)
}

// IfGtEq renders the then branch when context >= compare.
func IfGtEq(context interface{}, options HashBlock) string {
	return choose(hashTest(context, options, greaterOrEqual), options)
}

// UnlessGtEq is IfGtEq with the branches swapped.
func UnlessGtEq(context interface{}, options HashBlock) string {
	return choose(!hashTest(context, options, greaterOrEqual), options)
}

// IfLtEq renders the then branch when context <= compare.
func IfLtEq(context interface{}, options HashBlock) string {
	return choose(hashTest(context, options, lessOrEqual), options)
}

// UnlessLtEq is IfLtEq with the branches swapped.
func UnlessLtEq(context interface{}, options HashBlock) string {
	return choose(!hashTest(context, options, lessOrEqual), options)
}
