// Package simplify reduces expression trees using the rules of vector and
// matrix arithmetic.
//
// Simplify works bottom-up: children are simplified first and a binary node
// is then rewritten based on the shapes of its simplified operands. Anything
// that cannot be reduced (identifiers, placeholders, dimension mismatches) is
// rebuilt unchanged around its simplified children, so the result is always
// a complete tree. Simplify is pure and idempotent.
//
// Parentheses do not survive: a Group simplifies to its simplified contents.
// Nodes created by a reduction carry the span of the binary expression they
// replace.
package simplify

import (
	"github.com/dhamidi/mathpad/linalg/parser"
)

// Simplify returns the reduced form of e.
func Simplify(e parser.Expr) parser.Expr {
	switch n := e.(type) {
	case parser.Number, parser.Ident, parser.Placeholder:
		return n
	case parser.Group:
		return Simplify(n.Inner)
	case parser.Vector:
		return parser.Vector{Elements: simplifyAll(n.Elements), Loc: n.Loc}
	case parser.Matrix:
		return parser.Matrix{Rows: simplifyRows(n.Rows), Loc: n.Loc}
	case parser.Binary:
		return reduce(n.Op, Simplify(n.Left), Simplify(n.Right), n.Loc)
	}
	return e
}

func simplifyAll(elems []parser.Expr) []parser.Expr {
	if elems == nil {
		return nil
	}
	out := make([]parser.Expr, len(elems))
	for i, elem := range elems {
		out[i] = Simplify(elem)
	}
	return out
}

func simplifyRows(rows [][]parser.Expr) [][]parser.Expr {
	if rows == nil {
		return nil
	}
	out := make([][]parser.Expr, len(rows))
	for i, row := range rows {
		out[i] = simplifyAll(row)
	}
	return out
}

// reduce applies the first matching rule to already simplified operands.
func reduce(op parser.Op, left, right parser.Expr, loc parser.Span) parser.Expr {
	unreduced := parser.Binary{Op: op, Left: left, Right: right, Loc: loc}

	if parser.IsPlaceholder(left) || parser.IsPlaceholder(right) {
		return unreduced
	}

	switch l := left.(type) {
	case parser.Number:
		switch r := right.(type) {
		case parser.Number:
			if v, ok := arithmetic(op, l.Value, r.Value); ok {
				return parser.Number{Value: v, Loc: loc}
			}
		case parser.Vector:
			if op == parser.OpMul {
				return scaleVector(l, r, false, loc)
			}
		case parser.Matrix:
			if op == parser.OpMul || op == parser.OpAdd || op == parser.OpSub {
				return scalarMatrix(op, l, r, false, loc)
			}
		}

	case parser.Vector:
		switch r := right.(type) {
		case parser.Vector:
			switch op {
			case parser.OpAdd, parser.OpSub:
				if res, ok := elementwise(op, l.Elements, r.Elements, loc); ok {
					return parser.Vector{Elements: res, Loc: loc}
				}
			case parser.OpDot:
				if res, ok := dot(l.Elements, r.Elements, loc); ok {
					return res
				}
			case parser.OpCross:
				if res, ok := cross(l.Elements, r.Elements, loc); ok {
					return res
				}
			}
		case parser.Number:
			if op == parser.OpMul {
				return scaleVector(r, l, true, loc)
			}
		}

	case parser.Matrix:
		switch r := right.(type) {
		case parser.Vector:
			if op == parser.OpMul {
				if res, ok := matrixVector(l, r, loc); ok {
					return res
				}
			}
		case parser.Matrix:
			switch op {
			case parser.OpMul:
				if res, ok := matrixMatrix(l, r, loc); ok {
					return res
				}
			case parser.OpAdd, parser.OpSub:
				if res, ok := matrixElementwise(op, l, r, loc); ok {
					return res
				}
			}
		case parser.Number:
			if op == parser.OpMul || op == parser.OpAdd || op == parser.OpSub {
				return scalarMatrix(op, r, l, true, loc)
			}
		}
	}

	return unreduced
}

func arithmetic(op parser.Op, a, b float64) (float64, bool) {
	switch op {
	case parser.OpAdd:
		return a + b, true
	case parser.OpSub:
		return a - b, true
	case parser.OpMul, parser.OpDot:
		return a * b, true
	}
	return 0, false
}

// combine builds op(a, b) and simplifies it.
func combine(op parser.Op, a, b parser.Expr, loc parser.Span) parser.Expr {
	return reduce(op, a, b, loc)
}

// ordered keeps the scalar on the side it was written on.
func ordered(op parser.Op, scalar, x parser.Expr, scalarRight bool, loc parser.Span) parser.Expr {
	if scalarRight {
		return combine(op, x, scalar, loc)
	}
	return combine(op, scalar, x, loc)
}

func scaleVector(s parser.Number, v parser.Vector, scalarRight bool, loc parser.Span) parser.Expr {
	elems := make([]parser.Expr, len(v.Elements))
	for i, elem := range v.Elements {
		elems[i] = ordered(parser.OpMul, s, elem, scalarRight, loc)
	}
	return parser.Vector{Elements: elems, Loc: loc}
}

func scalarMatrix(op parser.Op, s parser.Number, m parser.Matrix, scalarRight bool, loc parser.Span) parser.Expr {
	rows := make([][]parser.Expr, len(m.Rows))
	for i, row := range m.Rows {
		rows[i] = make([]parser.Expr, len(row))
		for j, cell := range row {
			rows[i][j] = ordered(op, s, cell, scalarRight, loc)
		}
	}
	return parser.Matrix{Rows: rows, Loc: loc}
}

func elementwise(op parser.Op, a, b []parser.Expr, loc parser.Span) ([]parser.Expr, bool) {
	if len(a) != len(b) {
		return nil, false
	}
	out := make([]parser.Expr, len(a))
	for i := range a {
		out[i] = combine(op, a[i], b[i], loc)
	}
	return out, true
}

// sumOfProducts builds a[0]*b[0] + a[1]*b[1] + ... as a left-nested tree and
// simplifies it. An empty sum is zero.
func sumOfProducts(a, b []parser.Expr, loc parser.Span) parser.Expr {
	if len(a) == 0 {
		return parser.Number{Value: 0, Loc: loc}
	}
	var sum parser.Expr
	for i := range a {
		term := parser.Binary{Op: parser.OpMul, Left: a[i], Right: b[i], Loc: loc}
		if sum == nil {
			sum = term
			continue
		}
		sum = parser.Binary{Op: parser.OpAdd, Left: sum, Right: term, Loc: loc}
	}
	return Simplify(sum)
}

func dot(a, b []parser.Expr, loc parser.Span) (parser.Expr, bool) {
	if len(a) != len(b) {
		return nil, false
	}
	return sumOfProducts(a, b, loc), true
}

func cross(a, b []parser.Expr, loc parser.Span) (parser.Expr, bool) {
	if len(a) != 3 || len(b) != 3 {
		return nil, false
	}
	component := func(i, j int) parser.Expr {
		return Simplify(parser.Binary{
			Op:    parser.OpSub,
			Left:  parser.Binary{Op: parser.OpMul, Left: a[i], Right: b[j], Loc: loc},
			Right: parser.Binary{Op: parser.OpMul, Left: a[j], Right: b[i], Loc: loc},
			Loc:   loc,
		})
	}
	return parser.Vector{
		Elements: []parser.Expr{component(1, 2), component(2, 0), component(0, 1)},
		Loc:      loc,
	}, true
}

func column(m parser.Matrix, j int) []parser.Expr {
	col := make([]parser.Expr, len(m.Rows))
	for i, row := range m.Rows {
		col[i] = row[j]
	}
	return col
}

func matrixVector(m parser.Matrix, v parser.Vector, loc parser.Span) (parser.Expr, bool) {
	if !m.IsRectangular() || m.Cols() != len(v.Elements) {
		return nil, false
	}
	elems := make([]parser.Expr, len(m.Rows))
	for i, row := range m.Rows {
		elems[i] = sumOfProducts(row, v.Elements, loc)
	}
	return parser.Vector{Elements: elems, Loc: loc}, true
}

func matrixMatrix(a, b parser.Matrix, loc parser.Span) (parser.Expr, bool) {
	if !a.IsRectangular() || !b.IsRectangular() || a.Cols() != len(b.Rows) {
		return nil, false
	}
	rows := make([][]parser.Expr, len(a.Rows))
	for i, row := range a.Rows {
		rows[i] = make([]parser.Expr, b.Cols())
		for j := range rows[i] {
			rows[i][j] = sumOfProducts(row, column(b, j), loc)
		}
	}
	return parser.Matrix{Rows: rows, Loc: loc}, true
}

func matrixElementwise(op parser.Op, a, b parser.Matrix, loc parser.Span) (parser.Expr, bool) {
	if len(a.Rows) != len(b.Rows) {
		return nil, false
	}
	rows := make([][]parser.Expr, len(a.Rows))
	for i := range a.Rows {
		row, ok := elementwise(op, a.Rows[i], b.Rows[i], loc)
		if !ok {
			return nil, false
		}
		rows[i] = row
	}
	return parser.Matrix{Rows: rows, Loc: loc}, true
}
