package helpers

import (
	"encoding/json"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/aymerick/raymond"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers keep state between calls, so each call builds its own.
func upper(s string) string { return cases.Upper(language.Und).String(s) }
func lower(s string) string { return cases.Lower(language.Und).String(s) }

func plainString(v interface{}) (string, bool) {
	if classOf(v) != classString {
		return "", false
	}
	s := reflect.ValueOf(v).String()
	return s, s != ""
}

// CapitalizeFirst upper-cases the first character of str. ok is false when
// str is not a non-empty string.
func CapitalizeFirst(str interface{}) (string, bool) {
	s, ok := plainString(str)
	if !ok {
		return "", false
	}
	_, size := utf8.DecodeRuneInString(s)
	return upper(s[:size]) + s[size:], true
}

// Hyphenate replaces spaces with hyphens and lower-cases the result. ok is
// false when str is not a non-empty string.
func Hyphenate(str interface{}) (string, bool) {
	s, ok := plainString(str)
	if !ok {
		return "", false
	}
	return lower(strings.ReplaceAll(s, " ", "-")), true
}

// PrintParam wraps val in a code element.
func PrintParam(val interface{}) string {
	return "<code>" + stringOf(val) + "</code>"
}

// PrintEnum wraps every element of arr in a code element and joins them with
// commas. A non-list operand renders as a single element.
func PrintEnum(arr interface{}) string {
	items, ok := listOf(arr)
	if !ok {
		if arr == nil {
			return ""
		}
		items = []interface{}{arr}
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = PrintParam(item)
	}
	return strings.Join(parts, ",")
}

// ObjectLink builds an anchor to the "<url>-properties" section. Both parts are
// escaped and the url is lower-cased; the result is marked safe.
func ObjectLink(text, url interface{}) raymond.SafeString {
	t := raymond.Escape(stringOf(text))
	u := lower(raymond.Escape(stringOf(url)))
	return raymond.SafeString(`<a href="#` + u + `-properties">` + t + `</a>`)
}

// Debug renders data as JSON indented with two spaces. Values that cannot be
// encoded render as an empty string.
func Debug(data interface{}) string {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return ""
	}
	return string(out)
}
