package helpers

import (
	"testing"

	"github.com/aymerick/raymond"
	"github.com/stretchr/testify/assert"
)

func TestCapitalizeFirst(t *testing.T) {
	out, ok := CapitalizeFirst("hello world")
	assert.True(t, ok)
	assert.Equal(t, "Hello world", out)

	out, ok = CapitalizeFirst("élan vital")
	assert.True(t, ok)
	assert.Equal(t, "Élan vital", out)

	out, ok = CapitalizeFirst("ßtraße")
	assert.True(t, ok)
	assert.Equal(t, "SStraße", out)

	out, ok = CapitalizeFirst("Already")
	assert.True(t, ok)
	assert.Equal(t, "Already", out)

	for _, v := range []interface{}{42, nil, "", true, []interface{}{"a"}} {
		_, ok := CapitalizeFirst(v)
		assert.False(t, ok, "value %v", v)
	}
}

func TestHyphenate(t *testing.T) {
	out, ok := Hyphenate("Foo Bar Baz")
	assert.True(t, ok)
	assert.Equal(t, "foo-bar-baz", out)

	out, ok = Hyphenate("Two  Spaces")
	assert.True(t, ok)
	assert.Equal(t, "two--spaces", out)

	out, ok = Hyphenate("ÀLA CARTE")
	assert.True(t, ok)
	assert.Equal(t, "àla-carte", out)

	_, ok = Hyphenate(3.5)
	assert.False(t, ok)

	_, ok = Hyphenate("")
	assert.False(t, ok)
}

func TestPrintParam(t *testing.T) {
	assert.Equal(t, "<code>id</code>", PrintParam("id"))
	assert.Equal(t, "<code>7</code>", PrintParam(7))
}

func TestPrintEnum(t *testing.T) {
	assert.Equal(t, "<code>a</code>,<code>b</code>", PrintEnum([]interface{}{"a", "b"}))
	assert.Equal(t, "<code>1</code>,<code>2</code>", PrintEnum([]int{1, 2}))
	assert.Equal(t, "", PrintEnum([]string{}))
	assert.Equal(t, "", PrintEnum(nil))
	assert.Equal(t, "<code>x</code>", PrintEnum("x"))
}

func TestObjectLink(t *testing.T) {
	assert.Equal(t,
		raymond.SafeString(`<a href="#mytype-properties">MyType</a>`),
		ObjectLink("MyType", "MyType"))

	link := string(ObjectLink("A&B", "Foo<Bar>"))
	assert.Contains(t, link, "A&amp;B")
	assert.Contains(t, link, "#foo&lt;bar&gt;-properties")
}

func TestDebug(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": [\n    \"x\"\n  ]\n}", Debug(map[string]interface{}{"a": 1, "b": []string{"x"}}))
	assert.Equal(t, `"text"`, Debug("text"))
	assert.Equal(t, "null", Debug(nil))
	assert.Equal(t, "", Debug(func() {}))
}
