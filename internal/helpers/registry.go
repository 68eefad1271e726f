package helpers

import (
	"sort"
)

// aliases maps alternative helper names to their canonical name.
var aliases = map[string]string{
	"ifeq":       "if_eq",
	"unlessEq":   "unless_eq",
	"ifgt":       "if_gt",
	"unlessGt":   "unless_gt",
	"iflt":       "if_lt",
	"unlessLt":   "unless_lt",
	"ifgteq":     "if_gteq",
	"unlessGtEq": "unless_gteq",
	"ifLtEq":     "if_lteq",
	"unlessLtEq": "unless_lteq",
}

var registry = buildRegistry()

func buildRegistry() map[string]interface{} {
	r := map[string]interface{}{
		"contains":        Contains,
		"and":             And,
		"or":              Or,
		"gt":              Gt,
		"gte":             Gte,
		"lt":              Lt,
		"lte":             Lte,
		"is":              Is,
		"isnt":            Isnt,
		"ifNth":           IfNth,
		"ifEven":          IfEven,
		"ifAny":           ifAnyHelper,
		"compare":         compareHelper,
		"if_eq":           IfEq,
		"unless_eq":       UnlessEq,
		"if_gt":           IfGt,
		"unless_gt":       UnlessGt,
		"if_lt":           IfLt,
		"unless_lt":       UnlessLt,
		"if_gteq":         IfGtEq,
		"unless_gteq":     UnlessGtEq,
		"if_lteq":         IfLtEq,
		"unless_lteq":     UnlessLtEq,
		"prioSort":        prioSortHelper,
		"capitalizeFirst": capitalizeFirstHelper,
		"hyphenate":       hyphenateHelper,
		"printParam":      PrintParam,
		"printEnum":       PrintEnum,
		"objectLink":      ObjectLink,
		"debug":           Debug,
	}
	for alias, name := range aliases {
		r[alias] = r[name]
	}
	return r
}

// Template bindings. raymond calls helpers with a fixed number of operands, so
// the variadic Go functions are bound at their usual arity. Errors panic; raymond
// recovers them and returns them from Exec.

func ifAnyHelper(a, b interface{}, options Block) string {
	return IfAny(options, a, b)
}

func compareHelper(left, operator, right interface{}, options Block) string {
	out, err := Compare(options, left, operator, right)
	if err != nil {
		panic(err)
	}
	return out
}

func prioSortHelper(context, key, prioList interface{}, options Iterator) string {
	out, err := PrioSort(options, context, key, prioList)
	if err != nil {
		panic(err)
	}
	return out
}

func capitalizeFirstHelper(str interface{}) string {
	out, _ := CapitalizeFirst(str)
	return out
}

func hyphenateHelper(str interface{}) string {
	out, _ := Hyphenate(str)
	return out
}

// Helpers returns a fresh name -> helper map, aliases included, ready for
// raymond's RegisterHelpers.
func Helpers() map[string]interface{} {
	out := make(map[string]interface{}, len(registry))
	for name, fn := range registry {
		out[name] = fn
	}
	return out
}

// Lookup returns the helper registered under name or alias.
func Lookup(name string) (interface{}, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Names returns every registered name, aliases included, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aliases returns a copy of the alias -> canonical name table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for alias, name := range aliases {
		out[alias] = name
	}
	return out
}
