package format

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dhamidi/mathpad/linalg"
	"github.com/dhamidi/mathpad/linalg/parser"
)

// PlaceholderGlyph is printed for empty slots.
const PlaceholderGlyph = "□"

type Option func(*textPrinter)

// WithPrecision rounds numbers to the given number of decimal places.
// A negative precision prints the shortest exact representation.
func WithPrecision(places int) Option {
	return func(p *textPrinter) {
		p.precision = places
	}
}

// WithSource makes the text encoder print "source = result" lines.
func WithSource() Option {
	return func(p *textPrinter) {
		p.withSource = true
	}
}

type textPrinter struct {
	sb         strings.Builder
	precision  int
	withSource bool
}

func newTextPrinter(opts ...Option) *textPrinter {
	p := &textPrinter{precision: -1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Text renders e as infix source text. Parentheses are inserted where the
// tree shape needs them, so a simplified tree prints unambiguously.
func Text(e parser.Expr, opts ...Option) string {
	p := newTextPrinter(opts...)
	p.expr(e, 0)
	return p.sb.String()
}

// FormatNumber renders v as the shortest decimal that round-trips, or rounded
// to places when places >= 0.
func FormatNumber(v float64, places int) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	d := decimal.NewFromFloat(v)
	if places >= 0 {
		return d.StringFixed(int32(places))
	}
	return d.String()
}

const (
	precAdd  = 1
	precMul  = 2
	precAtom = 3
)

func precedence(e parser.Expr) int {
	if b, ok := e.(parser.Binary); ok {
		if b.Op == parser.OpAdd || b.Op == parser.OpSub {
			return precAdd
		}
		return precMul
	}
	return precAtom
}

// expr prints e, wrapping it in parentheses if its precedence is below minPrec.
func (p *textPrinter) expr(e parser.Expr, minPrec int) {
	if precedence(e) < minPrec {
		p.sb.WriteString("(")
		p.expr(e, 0)
		p.sb.WriteString(")")
		return
	}

	switch n := e.(type) {
	case parser.Number:
		p.sb.WriteString(FormatNumber(n.Value, p.precision))
	case parser.Ident:
		p.sb.WriteString(n.Name)
	case parser.Placeholder:
		p.sb.WriteString(PlaceholderGlyph)
	case parser.Group:
		p.sb.WriteString("(")
		p.expr(n.Inner, 0)
		p.sb.WriteString(")")
	case parser.Vector:
		p.sb.WriteString("<")
		p.list(n.Elements)
		p.sb.WriteString(">")
	case parser.Matrix:
		p.sb.WriteString("[")
		for i, row := range n.Rows {
			if i > 0 {
				p.sb.WriteString("; ")
			}
			p.list(row)
		}
		p.sb.WriteString("]")
	case parser.Binary:
		prec := precedence(n)
		// Operators are left-associative: an equal-precedence right operand
		// needs parentheses.
		p.expr(n.Left, prec)
		p.sb.WriteString(" " + n.Op.String() + " ")
		p.expr(n.Right, prec+1)
	}
}

func (p *textPrinter) list(elems []parser.Expr) {
	for i, elem := range elems {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.expr(elem, 0)
	}
}

// TextEncoder prints the simplified result of each evaluation on its own line.
type TextEncoder struct {
	w      io.Writer
	opts   []Option
	result *linalg.Result
}

func NewTextEncoder(w io.Writer, opts ...Option) *TextEncoder {
	return &TextEncoder{w: w, opts: opts}
}

func (e *TextEncoder) Encode(result *linalg.Result) error {
	e.result = result
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	p := newTextPrinter(e.opts...)
	if p.withSource {
		p.expr(e.result.Tree, 0)
		p.sb.WriteString(" = ")
	}
	p.expr(e.result.Simplified, 0)
	p.sb.WriteString("\n")
	return []byte(p.sb.String()), nil
}
