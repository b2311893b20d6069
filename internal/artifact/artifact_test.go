package artifact

import (
	"errors"
	"testing"

	"pyjs/internal/source"
	"pyjs/internal/translate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed returns a translator that ignores its input and emits js.
func fixed(js string) translate.Translator {
	return translate.Func(func(string, translate.Namespace) (string, error) {
		return js, nil
	})
}

func TestBuildFunctionStripsDeclaration(t *testing.T) {
	unit := source.Unit{
		Kind:   source.KindFunction,
		Name:   "f",
		Source: "def f(a):\n    return a\n",
	}
	art, err := Build(fixed("var f = function (a) {return a;};\n"), unit)
	require.NoError(t, err)

	assert.Equal(t, source.KindFunction, art.Kind())
	assert.Equal(t, "f", art.Name())
	assert.Equal(t, "def f(a):\n    return a\n", art.PySource())
	assert.Equal(t, "function (a) {return a;};\n", art.JSSource())
}

func TestBuildClassKeepsDeclaration(t *testing.T) {
	unit := source.Unit{
		Kind:   source.KindClass,
		Name:   "Foo",
		Source: "class Foo:\n    pass\n",
	}
	js := "var Foo = function () {};\nFoo.prototype.x = 1;\n"
	art, err := Build(fixed(js), unit)
	require.NoError(t, err)

	assert.Equal(t, source.KindClass, art.Kind())
	assert.Equal(t, js, art.JSSource())
}

func TestBuildFunctionShapeViolations(t *testing.T) {
	unit := source.Unit{Kind: source.KindFunction, Name: "f", Source: "def f():\n    pass\n"}

	for name, js := range map[string]string{
		"no var declaration":  "f = function () {};\n",
		"no assignment":       "var f;\n",
		"not a function body": "var f = 42;\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Build(fixed(js), unit)
			var inv *InvariantError
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, source.KindFunction, inv.Kind)
			assert.NotEmpty(t, inv.Output)
		})
	}
}

func TestBuildClassShapeViolation(t *testing.T) {
	unit := source.Unit{Kind: source.KindClass, Name: "Foo", Source: "class Foo:\n    pass\n"}

	_, err := Build(fixed("function Foo() {}\n"), unit)
	var inv *InvariantError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, source.KindClass, inv.Kind)
	assert.Contains(t, inv.Error(), "class")
}

func TestBuildPropagatesTranslatorError(t *testing.T) {
	boom := errors.New("bad syntax at line 3")
	tr := translate.Func(func(string, translate.Namespace) (string, error) {
		return "", boom
	})

	unit := source.Unit{Kind: source.KindFunction, Name: "f", Source: "def f():\n    pass\n"}
	_, err := Build(tr, unit)
	assert.ErrorIs(t, err, boom)
}

func TestInvokeIsRefused(t *testing.T) {
	fn, err := Build(fixed("var f = function () {};\n"),
		source.Unit{Kind: source.KindFunction, Name: "f", Source: "def f():\n    pass\n"})
	require.NoError(t, err)

	_, err = fn.Invoke()
	var direct *DirectInvocationError
	require.ErrorAs(t, err, &direct)
	assert.Contains(t, err.Error(), "call")

	cls, err := Build(fixed("var Foo = function () {};\n"),
		source.Unit{Kind: source.KindClass, Name: "Foo", Source: "class Foo:\n    pass\n"})
	require.NoError(t, err)

	_, err = cls.Invoke(1, 2)
	require.ErrorAs(t, err, &direct)
	assert.Contains(t, err.Error(), "instantiate")
}

func TestStringShowsBothSides(t *testing.T) {
	art, err := Build(fixed("var f = function () {};\n"),
		source.Unit{Kind: source.KindFunction, Name: "f", Source: "def f():\n    pass\n"})
	require.NoError(t, err)

	s := art.String()
	assert.Contains(t, s, "Python code that defines this function")
	assert.Contains(t, s, "JS code that represents this function")
	assert.Contains(t, s, "def f():")
	assert.Contains(t, s, "function () {}")
}
