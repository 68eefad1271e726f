package helpers

import (
	"math"
	"reflect"
	"strings"
)

// Contains renders the then branch when pattern occurs in str. A string str is
// searched for the string form of pattern; a list str is searched for an
// element strictly equal to pattern.
func Contains(str, pattern interface{}, options Block) string {
	return choose(contains(str, pattern), options)
}

func contains(str, pattern interface{}) bool {
	if str == nil || pattern == nil {
		return false
	}
	if classOf(str) == classString {
		return strings.Contains(reflect.ValueOf(str).String(), stringOf(pattern))
	}
	items, ok := listOf(str)
	if !ok {
		return false
	}
	for _, item := range items {
		if strictEqual(item, pattern) {
			return true
		}
	}
	return false
}

// And renders the then branch when both operands are truthy.
func And(a, b interface{}, options Block) string {
	return choose(truthy(a) && truthy(b), options)
}

// Or renders the then branch when either operand is truthy.
func Or(a, b interface{}, options Block) string {
	return choose(truthy(a) || truthy(b), options)
}

// Gt renders the then branch when value > test.
func Gt(value, test interface{}, options Block) string {
	return choose(greater(value, test), options)
}

// Gte renders the then branch when value >= test.
func Gte(value, test interface{}, options Block) string {
	return choose(greaterOrEqual(value, test), options)
}

// Lt renders the then branch when value < test.
func Lt(value, test interface{}, options Block) string {
	return choose(less(value, test), options)
}

// Lte renders the then branch when value <= test.
func Lte(value, test interface{}, options Block) string {
	return choose(lessOrEqual(value, test), options)
}

// Is renders the then branch when value and test are strictly equal.
func Is(value, test interface{}, options Block) string {
	return choose(strictEqual(value, test), options)
}

// Isnt renders the then branch when value and test are not strictly equal.
func Isnt(value, test interface{}, options Block) string {
	return choose(!strictEqual(value, test), options)
}

// IfNth renders the then branch on every nr-th one-based position, that is
// when (v+1) mod nr is 0. Meant for loop indexes: {{#ifNth 3 @index}}.
func IfNth(nr, v interface{}, options Block) string {
	return choose(math.Mod(toNumber(v)+1, toNumber(nr)) == 0, options)
}

// IfEven renders the then branch when n is an even number.
func IfEven(n interface{}, options Block) string {
	return choose(math.Mod(toNumber(n), 2) == 0, options)
}

// IfAny renders the then branch when every value is truthy. Despite the name
// it is an all-of test; with no values it renders the then branch.
func IfAny(options Block, values ...interface{}) string {
	for _, v := range values {
		if !truthy(v) {
			return options.Inverse()
		}
	}
	return options.Fn()
}
