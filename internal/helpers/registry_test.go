package helpers

import (
	"strings"
	"testing"

	"github.com/aymerick/raymond"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, source string, data interface{}) (string, error) {
	t.Helper()
	tpl, err := raymond.Parse(source)
	require.NoError(t, err)
	tpl.RegisterHelpers(Helpers())
	return tpl.Exec(data)
}

func mustRender(t *testing.T, source string, data interface{}) string {
	t.Helper()
	out, err := render(t, source, data)
	require.NoError(t, err)
	return out
}

func TestRegistryNames(t *testing.T) {
	expected := []string{
		"contains", "and", "gt", "gte", "is", "isnt", "lt", "lte", "or", "ifNth", "compare",
		"if_eq", "ifeq", "unless_eq", "unlessEq", "if_gt", "ifgt", "unless_gt", "unlessGt",
		"if_lt", "iflt", "unless_lt", "unlessLt", "if_gteq", "ifgteq", "unless_gteq", "unlessGtEq",
		"if_lteq", "ifLtEq", "unless_lteq", "unlessLtEq", "ifAny", "ifEven", "debug", "objectLink",
		"printEnum", "printParam", "prioSort", "capitalizeFirst", "hyphenate",
	}

	assert.ElementsMatch(t, expected, Names())
	for _, name := range expected {
		_, ok := Lookup(name)
		assert.True(t, ok, name)
	}

	_, ok := Lookup("missing")
	assert.False(t, ok)
}

func TestAliasesShareImplementation(t *testing.T) {
	for alias, name := range Aliases() {
		a, err := render(t, "{{#"+alias+" 5 compare=3}}T{{else}}F{{/"+alias+"}}", nil)
		require.NoError(t, err, alias)
		c, err := render(t, "{{#"+name+" 5 compare=3}}T{{else}}F{{/"+name+"}}", nil)
		require.NoError(t, err, name)
		assert.Equal(t, c, a, "%s -> %s", alias, name)
	}
}

func TestHelpersReturnsCopy(t *testing.T) {
	m := Helpers()
	delete(m, "compare")
	_, ok := Lookup("compare")
	assert.True(t, ok)

	a := Aliases()
	a["ifeq"] = "nope"
	assert.Equal(t, "if_eq", Aliases()["ifeq"])
}

func TestTemplateBlocks(t *testing.T) {
	data := map[string]interface{}{
		"score":  12,
		"status": "open",
		"title":  "hello world",
		"tags":   []interface{}{"a", "b"},
		"none":   nil,
	}

	tests := []struct {
		source string
		want   string
	}{
		{`{{#gt score 10}}high{{else}}low{{/gt}}`, "high"},
		{`{{#lt score 10}}low{{else}}high{{/lt}}`, "high"},
		{`{{#is 3 3}}T{{else}}F{{/is}}`, "T"},
		{`{{#is 3 "3"}}T{{else}}F{{/is}}`, "F"},
		{`{{#isnt status "closed"}}T{{else}}F{{/isnt}}`, "T"},
		{`{{#and score status}}T{{else}}F{{/and}}`, "T"},
		{`{{#or none false}}T{{else}}F{{/or}}`, "F"},
		{`{{#contains title "lo w"}}T{{else}}F{{/contains}}`, "T"},
		{`{{#contains tags "b"}}T{{else}}F{{/contains}}`, "T"},
		{`{{#compare score ">=" 12}}T{{else}}F{{/compare}}`, "T"},
		{`{{#compare status "typeof" "string"}}T{{else}}F{{/compare}}`, "T"},
		{`{{#if_eq status compare="open"}}T{{else}}F{{/if_eq}}`, "T"},
		{`{{#unless_eq status compare="open"}}T{{else}}F{{/unless_eq}}`, "F"},
		{`{{#unless_gt score compare=20}}T{{else}}F{{/unless_gt}}`, "T"},
		{`{{#ifAny score status}}T{{else}}F{{/ifAny}}`, "T"},
		{`{{#ifAny score none}}T{{else}}F{{/ifAny}}`, "F"},
		{`{{#each tags}}{{#ifEven @index}}[{{this}}]{{/ifEven}}{{/each}}`, "[a]"},
		{`{{#each tags}}{{#ifNth 2 @index}}<{{this}}>{{/ifNth}}{{/each}}`, "<b>"},
		{`{{capitalizeFirst title}}`, "Hello world"},
		{`{{hyphenate "Foo Bar Baz"}}`, "foo-bar-baz"},
		{`{{capitalizeFirst score}}`, ""},
		{`{{objectLink "MyType" "MyType"}}`, `<a href="#mytype-properties">MyType</a>`},
		{`{{{printParam "id"}}}`, "<code>id</code>"},
		{`{{{printEnum tags}}}`, "<code>a</code>,<code>b</code>"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, mustRender(t, tt.source, data))
		})
	}
}

func TestTemplateEscapesPlainStrings(t *testing.T) {
	out := mustRender(t, `{{printParam "id"}}`, nil)
	assert.True(t, strings.HasPrefix(out, "&lt;code&gt;"), out)
}

func TestTemplatePrioSort(t *testing.T) {
	data := map[string]interface{}{
		"animals": []interface{}{
			map[string]interface{}{"id": "cat"},
			map[string]interface{}{"id": "monkey"},
			map[string]interface{}{"id": "lion"},
			map[string]interface{}{"id": "sheep"},
		},
		"prio": []interface{}{"monkey", "lion"},
	}

	out := mustRender(t, `{{#prioSort animals "id" prio}}{{id}},{{/prioSort}}`, data)
	assert.Equal(t, "monkey,lion,cat,sheep,", out)
}

func TestTemplateErrors(t *testing.T) {
	_, err := render(t, `{{#compare 5 "bogus" 3}}T{{/compare}}`, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownOperator)
}
