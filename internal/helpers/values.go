package helpers

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// class groups operand types the way the comparison rules see them.
type class int

const (
	classUndefined class = iota
	classBoolean
	classNumber
	classString
	classFunction
	classObject
)

func classOf(v interface{}) class {
	if v == nil {
		return classUndefined
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return classBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return classNumber
	case reflect.String:
		return classString
	case reflect.Func:
		return classFunction
	default:
		return classObject
	}
}

// typeOf returns the dynamic type name used by the typeof operator.
func typeOf(v interface{}) string {
	switch classOf(v) {
	case classUndefined:
		return "undefined"
	case classBoolean:
		return "boolean"
	case classNumber:
		return "number"
	case classString:
		return "string"
	case classFunction:
		return "function"
	default:
		return "object"
	}
}

// truthy reports whether v counts as true in a boolean context. Empty lists
// and maps are truthy.
func truthy(v interface{}) bool {
	switch classOf(v) {
	case classUndefined:
		return false
	case classBoolean:
		return reflect.ValueOf(v).Bool()
	case classNumber:
		n := toNumber(v)
		return n != 0 && !math.IsNaN(n)
	case classString:
		return reflect.ValueOf(v).String() != ""
	default:
		return !isNilRef(reflect.ValueOf(v))
	}
}

func isNilRef(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// toNumber converts v to a float64, returning NaN when no numeric reading exists.
func toNumber(v interface{}) float64 {
	if v == nil {
		return math.NaN()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return parseNumber(rv.String())
	case reflect.Slice, reflect.Array:
		return parseNumber(stringOf(v))
	default:
		return math.NaN()
	}
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// stringOf returns the primitive string form of v: lists join their elements
// with commas, maps and structs become "[object Object]".
func stringOf(v interface{}) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return formatNumber(toNumber(v))
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = stringOf(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
		return stringOf(rv.Elem().Interface())
	default:
		return "[object Object]"
	}
}

func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// strictEqual compares without coercion. All numeric kinds form one class;
// lists, maps and pointers are equal only when they share the same reference.
func strictEqual(a, b interface{}) bool {
	ca, cb := classOf(a), classOf(b)
	if ca != cb {
		return false
	}
	switch ca {
	case classUndefined:
		return true
	case classBoolean:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool()
	case classNumber:
		return toNumber(a) == toNumber(b)
	case classString:
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String()
	default:
		return sameReference(reflect.ValueOf(a), reflect.ValueOf(b))
	}
}

func sameReference(a, b reflect.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Map, reflect.Ptr, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len()
	case reflect.Func:
		return false
	}
	if !a.Type().Comparable() {
		return false
	}
	return comparableEqual(a.Interface(), b.Interface())
}

// comparableEqual guards against structs whose interface fields hold
// uncomparable values.
func comparableEqual(a, b interface{}) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// looseEqual compares with coercion between booleans, numbers, strings and lists.
func looseEqual(a, b interface{}) bool {
	ca, cb := classOf(a), classOf(b)
	if ca == cb {
		return strictEqual(a, b)
	}
	switch {
	case ca == classUndefined || cb == classUndefined:
		return false
	case ca == classBoolean:
		return looseEqual(toNumber(a), b)
	case cb == classBoolean:
		return looseEqual(a, toNumber(b))
	case ca == classNumber && cb == classString, ca == classString && cb == classNumber:
		return toNumber(a) == toNumber(b)
	case ca == classObject && (cb == classNumber || cb == classString):
		return looseEqual(stringOf(a), b)
	case cb == classObject && (ca == classNumber || ca == classString):
		return looseEqual(a, stringOf(b))
	}
	return false
}

// compareOrder orders a and b. Two strings compare lexicographically, anything
// else numerically; ok is false when either side has no numeric reading.
func compareOrder(a, b interface{}) (cmp int, ok bool) {
	pa, pb := primitive(a), primitive(b)
	sa, aIsStr := pa.(string)
	sb, bIsStr := pb.(string)
	if aIsStr && bIsStr {
		return strings.Compare(sa, sb), true
	}
	na, nb := toNumber(pa), toNumber(pb)
	if math.IsNaN(na) || math.IsNaN(nb) {
		return 0, false
	}
	switch {
	case na < nb:
		return -1, true
	case na > nb:
		return 1, true
	}
	return 0, true
}

// primitive reduces lists to their string form and plain strings to string.
func primitive(v interface{}) interface{} {
	switch classOf(v) {
	case classString:
		return reflect.ValueOf(v).String()
	case classObject:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			return stringOf(v)
		}
		return nil
	}
	return v
}

func greater(a, b interface{}) bool {
	c, ok := compareOrder(a, b)
	return ok && c > 0
}

func greaterOrEqual(a, b interface{}) bool {
	c, ok := compareOrder(a, b)
	return ok && c >= 0
}

func less(a, b interface{}) bool {
	c, ok := compareOrder(a, b)
	return ok && c < 0
}

func lessOrEqual(a, b interface{}) bool {
	c, ok := compareOrder(a, b)
	return ok && c <= 0
}

// listOf returns the elements of a slice or array operand.
func listOf(v interface{}) ([]interface{}, bool) {
	if v == nil {
		return nil, false
	}
	if l, ok := v.([]interface{}); ok {
		return l, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// field reads the named field of a map or struct record.
func field(record interface{}, name string) (interface{}, bool) {
	if m, ok := record.(map[string]interface{}); ok {
		v, found := m[name]
		return v, found
	}
	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		sf, ok := rv.Type().FieldByName(name)
		if !ok || !sf.IsExported() {
			return nil, false
		}
		fv, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			return nil, false
		}
		return fv.Interface(), true
	}
	return nil, false
}
