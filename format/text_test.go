package format

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/mathpad/linalg"
	"github.com/dhamidi/mathpad/linalg/parser"
)

func TestText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "□"},
		{"x", "x"},
		{"<1,2>", "<1, 2>"},
		{"<>", "<>"},
		{"[1,2;3,4]", "[1, 2; 3, 4]"},
		{"(1+2)*3", "(1 + 2) * 3"},
		{"1-(2-3)", "1 - (2 - 3)"},
		{"a·b×c", "a · b × c"},
		{"a.b", "a · b"},
		{"1+", "1 + □"},
		{"<1,", "<1, □>"},
		{"[1;", "[1; □]"},
		{".5", "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree, _ := parser.ParseString(tt.input)
			assert.Equal(t, tt.want, Text(tree))
		})
	}
}

func TestTextParenthesizesByPrecedence(t *testing.T) {
	num := func(v float64) parser.Expr { return parser.Number{Value: v} }
	ident := func(name string) parser.Expr { return parser.Ident{Name: name} }
	bin := func(op parser.Op, l, r parser.Expr) parser.Expr {
		return parser.Binary{Op: op, Left: l, Right: r}
	}

	tests := []struct {
		name string
		expr parser.Expr
		want string
	}{
		{"sum under product", bin(parser.OpMul, num(2), bin(parser.OpAdd, ident("a"), ident("b"))), "2 * (a + b)"},
		{"left nested sum", bin(parser.OpSub, bin(parser.OpSub, num(1), num(2)), num(3)), "1 - 2 - 3"},
		{"right nested sum", bin(parser.OpSub, num(1), bin(parser.OpSub, num(2), num(3))), "1 - (2 - 3)"},
		{"product under sum", bin(parser.OpAdd, bin(parser.OpMul, ident("a"), ident("x")), bin(parser.OpMul, ident("b"), ident("y"))), "a * x + b * y"},
		{"negative number", bin(parser.OpAdd, num(-1), num(2)), "-1 + 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.expr))
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, input := range []string{
		"<1, 2> + <3, 4>",
		"[a, b; c, d] * <x, y>",
		"1 - (2 - 3)",
		"(1 + 2) * 3",
		"<1,0,0>×<0,1,0>",
		"a · (b × c)",
		".5 + 5.",
	} {
		t.Run(input, func(t *testing.T) {
			tree, diags := parser.ParseString(input)
			require.Empty(t, diags)
			again, diags := parser.ParseString(Text(tree))
			require.Empty(t, diags)
			assert.Equal(t, parser.Dump(tree), parser.Dump(again))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v      float64
		places int
		want   string
	}{
		{10, -1, "10"},
		{0.1, -1, "0.1"},
		{-3, -1, "-3"},
		{1.5, 2, "1.50"},
		{2.0 / 3, 3, "0.667"},
		{7, 0, "7"},
		{math.Inf(1), -1, "+Inf"},
		{math.Inf(-1), 2, "-Inf"},
		{math.NaN(), -1, "NaN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.v, tt.places), "FormatNumber(%v, %d)", tt.v, tt.places)
	}
}

func TestTextWithPrecision(t *testing.T) {
	r := linalg.FromSource("<1,2>*1.5")
	assert.Equal(t, "<1.50, 3.00>", Text(r.Simplified, WithPrecision(2)))
}

func TestTextEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewTextEncoder(&buf)
	require.NoError(t, enc.Encode(linalg.FromSource("2+3")))
	assert.Equal(t, "5\n", buf.String())

	buf.Reset()
	enc = NewTextEncoder(&buf, WithSource())
	require.NoError(t, enc.Encode(linalg.FromSource("(2+3)*<1,1>")))
	assert.Equal(t, "(2 + 3) * <1, 1> = <5, 5>\n", buf.String())
}
