package formatting_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BCG-Gamma/pytools/expression"
	"github.com/BCG-Gamma/pytools/expression/formatting"
)

func ident(t *testing.T, name string) *expression.Identifier {
	t.Helper()
	id, err := expression.NewId(name)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func kwarg(t *testing.T, name string, value any) *expression.KeywordArgument {
	t.Helper()
	kw, err := expression.Kwarg(name, value)
	if err != nil {
		t.Fatal(err)
	}
	return kw
}

func TestSingleLine(t *testing.T) {
	a, b, c := identTriple(t)
	f, x := ident(t, "f"), ident(t, "x")

	ab, err := expression.NewAttr(a, "b")
	require.NoError(t, err)
	abc, err := expression.NewAttr(ab, "c")
	require.NoError(t, err)

	index12, err := expression.NewIndex(x, 1, 2)
	require.NoError(t, err)
	indexSlice, err := expression.NewIndex(x, expression.Slice{Start: 1, Stop: 2})
	require.NoError(t, err)

	tests := []struct {
		name string
		expr expression.Expression
		want string
	}{
		{"call", expression.NewCall(f, 1, 2), "f(1, 2)"},
		{"call without arguments", expression.NewCall(f), "f()"},
		{
			"call with keyword argument",
			expression.NewCall(f, 1, kwarg(t, "abc", expression.Neg(5))),
			"f(1, abc=-5)",
		},
		{
			"dict",
			expression.Dict(expression.Entry(a, 1), expression.Entry(b, 2)),
			"{a: 1, b: 2}",
		},
		{"multi-index", index12, "x[1, 2]"},
		{"index by slice", indexSlice, "x[1:2]"},
		{
			"slice without stop",
			expression.MakeExpression(expression.Slice{Start: 1, Step: 2}),
			"1::2",
		},
		{"tighter operand needs no parens", expression.Add(a, expression.Mul(b, c)), "a + b * c"},
		{"looser first operand wrapped", expression.Mul(expression.Add(a, b), c), "(a + b) * c"},
		{"looser later operand wrapped", expression.Mul(a, expression.Add(b, c)), "a * (b + c)"},
		{"tied later operand wrapped", expression.Sub(a, expression.Add(b, c)), "a - (b + c)"},
		{"flattened chain", expression.Add(expression.Add(a, b), c), "a + b + c"},
		{"right-nested chain keeps parens", expression.Add(a, expression.Add(b, c)), "a + (b + c)"},
		{"attribute chain", abc, "a.b.c"},
		{"power", expression.Pow(a, 2), "a ** 2"},
		{"alphabetic infix", expression.In(a, b), "a in b"},
		{"alphabetic unary operator", expression.Not(x), "not x"},
		{"symbolic unary operator", expression.Neg(x), "-x"},
		{"unary of looser operand", expression.Neg(expression.Add(a, b)), "-(a + b)"},
		{
			"lambda",
			expression.NewLambda([]*expression.Identifier{x}, expression.Add(x, 1)),
			"lambda x: x + 1",
		},
		{"empty list", expression.List(), "[]"},
		{"single-element list", expression.List(x), "[x]"},
		{"two-element list", expression.List(x, 1), "[x, 1]"},
		{"set", expression.Set(1, 2), "{1, 2}"},
		{"tuple", expression.Tuple(1, "y"), `(1, "y")`},
		{"string literal", expression.Lit("hello"), `"hello"`},
		{
			"precedence over call arguments",
			expression.NewCall(
				f,
				expression.RShift(
					expression.BitOr(1, 2),
					expression.Mod("x", x),
				),
				kwarg(t, "abc", expression.Neg(5)),
			),
			`f((1 | 2) >> "x" % x, abc=-5)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatting.Repr(tt.expr)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "\n")
			assert.Equal(t, got, formatting.Repr(tt.expr),
				"rendering must be deterministic")
		})
	}
}

func identTriple(t *testing.T) (a, b, c *expression.Identifier) {
	t.Helper()
	return ident(t, "a"), ident(t, "b"), ident(t, "c")
}

func TestMultiLineOperationWrapsInParens(t *testing.T) {
	a, b, c := identTriple(t)
	tf := formatting.NewTextFormatter(formatting.WithMaxWidth(5))
	want := strings.Join([]string{
		"(",
		"    a",
		"    + b",
		"    + c",
		")",
	}, "\n")
	assert.Equal(t, want, tf.ToText(expression.Add(a, b, c)))
}

func TestMultiLineCommaTrailsLines(t *testing.T) {
	f := ident(t, "f")
	aaa, bbb := ident(t, "aaa"), ident(t, "bbb")
	tf := formatting.NewTextFormatter(formatting.WithMaxWidth(8))
	want := strings.Join([]string{
		"f(",
		"    aaa,",
		"    bbb",
		")",
	}, "\n")
	assert.Equal(t, want, tf.ToText(expression.NewCall(f, aaa, bbb)))
}

func TestMultiLineOperationArgumentKeepsOwnParens(t *testing.T) {
	f := ident(t, "f")
	a, b, c := identTriple(t)
	tf := formatting.NewTextFormatter(formatting.WithMaxWidth(8))
	want := strings.Join([]string{
		"f(",
		"    (",
		"        a",
		"        + b",
		"    ),",
		"    c",
		")",
	}, "\n")
	assert.Equal(t, want, tf.ToText(expression.NewCall(f, expression.Add(a, b), c)))
}

func TestIndentWidthOption(t *testing.T) {
	a, b, c := identTriple(t)
	tf := formatting.NewTextFormatter(
		formatting.WithMaxWidth(5),
		formatting.WithIndentWidth(2),
	)
	want := strings.Join([]string{
		"(",
		"  a",
		"  + b",
		"  + c",
		")",
	}, "\n")
	assert.Equal(t, want, tf.ToText(expression.Add(a, b, c)))
}

func TestWidthBoundary(t *testing.T) {
	a, b, c := identTriple(t)
	f := ident(t, "f")

	exprs := []expression.Expression{
		expression.Add(a, b),
		expression.Add(a, b, c),
		expression.NewCall(f, a, b),
		expression.NewCall(f),
		expression.Mul(expression.Add(a, b), c),
		expression.Dict(expression.Entry(a, 1), expression.Entry(b, 2)),
		expression.List(a, b, c),
		expression.MakeExpression(expression.Slice{Start: 1, Stop: 2, Step: 3}),
		expression.NewCall(
			f,
			expression.NewCall(a, expression.Add(b, c)),
			expression.List(1, expression.Tuple(a, b)),
			kwarg(t, "k", expression.Not(expression.In(a, b))),
		),
	}
	for _, e := range exprs {
		single := formatting.Repr(e)

		atWidth := formatting.NewTextFormatter(formatting.WithMaxWidth(len(single)))
		assert.Equal(t, single, atWidth.ToText(e),
			"an expression fitting the width must render on one line")

		oneOver := formatting.NewTextFormatter(formatting.WithMaxWidth(len(single) - 1))
		assert.Contains(t, oneOver.ToText(e), "\n",
			"an expression one character over the width must break")
	}
}

// The paired assertions pin the length bookkeeping exactly: rendering
// on one line at the single-line width proves the computed length is
// no larger than the text, and breaking one character under it proves
// the length is no smaller.
func TestWidthBoundaryGeneratedTrees(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 64; i++ {
		e := genComposite(t, r, 3)
		single := formatting.Repr(e)
		require.NotContains(t, single, "\n")

		atWidth := formatting.NewTextFormatter(formatting.WithMaxWidth(len(single)))
		assert.Equal(t, single, atWidth.ToText(e),
			"tree %d (%s) must render on one line at its own width", i, single)

		oneOver := formatting.NewTextFormatter(formatting.WithMaxWidth(len(single) - 1))
		assert.Contains(t, oneOver.ToText(e), "\n",
			"tree %d (%s) must break one character over its width", i, single)
	}
}

// genComposite builds a random expression whose root can break across
// lines, so the width boundary is observable at the root.
func genComposite(t *testing.T, r *rand.Rand, depth int) expression.Expression {
	t.Helper()
	left, right := genOperand(t, r, depth-1), genOperand(t, r, depth-1)
	switch r.Intn(6) {
	case 0:
		return expression.Add(left, right)
	case 1:
		return expression.Mul(left, right)
	case 2:
		return expression.NewCall(ident(t, "f"), left, right)
	case 3:
		return expression.List(left, right)
	case 4:
		return expression.Tuple(left, right)
	default:
		return expression.Dict(expression.Entry(left, right))
	}
}

func genOperand(t *testing.T, r *rand.Rand, depth int) expression.Expression {
	t.Helper()
	if depth == 0 {
		switch r.Intn(3) {
		case 0:
			names := []string{"a", "bb", "ccc"}
			return ident(t, names[r.Intn(len(names))])
		case 1:
			return expression.Lit(r.Intn(100))
		default:
			return expression.Lit("s")
		}
	}
	if r.Intn(4) == 0 {
		return expression.Not(genOperand(t, r, depth-1))
	}
	return genComposite(t, r, depth)
}

func TestSingleLineIgnoresWidth(t *testing.T) {
	a, b := ident(t, "aaaa"), ident(t, "bbbb")
	tf := formatting.NewTextFormatter(
		formatting.WithMaxWidth(3),
		formatting.WithSingleLine(true),
	)
	assert.Equal(t, "aaaa + bbbb", tf.ToText(expression.Add(a, b)))
}

func TestAliasRendering(t *testing.T) {
	a, b, c := identTriple(t)
	alias := expression.NewAlias(expression.Add(a, b))
	product := expression.Mul(alias, c)

	assert.Equal(t, "(a + b) * c", formatting.Repr(product))

	alias.SetExpression(a)
	assert.Equal(t, "a * c", formatting.Repr(product),
		"redirecting an alias must change subsequent renderings")
}

func TestReprMatchesStringWithinWidth(t *testing.T) {
	a, b := ident(t, "a"), ident(t, "b")
	e := expression.Dict(expression.Entry(a, 1), expression.Entry(b, 2))
	assert.Equal(t, formatting.Repr(e), formatting.String(e))
}

type point struct{ x, y int }

func (p point) ToExpression() expression.Expression {
	id, _ := expression.NewId("point")
	return expression.NewCall(id, p.x, p.y)
}

func TestDefaultFormattersRegistered(t *testing.T) {
	single, err := expression.DefaultFormatter(true)
	require.NoError(t, err)
	multi, err := expression.DefaultFormatter(false)
	require.NoError(t, err)
	assert.NotNil(t, single)
	assert.NotNil(t, multi)

	text, err := expression.StringOf(point{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "point(1, 2)", text)

	text, err = expression.ReprOf(point{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "point(1, 2)", text)
}
