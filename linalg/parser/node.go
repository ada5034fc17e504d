package parser

import (
	"strconv"
	"strings"
)

// Span is a half-open [Start, End) range of rune offsets into the source.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return strconv.Itoa(s.Start) + "-" + strconv.Itoa(s.End)
}

// Contains reports whether offset lies within the span. The end offset is
// included so a caret sitting right after a node still selects it.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset <= s.End
}

// Covers reports whether s fully contains other.
func (s Span) Covers(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Union returns the smallest span covering both s and other.
func (s Span) Union(other Span) Span {
	return Span{Start: min(s.Start, other.Start), End: max(s.End, other.End)}
}

type NodeKind int

const (
	KindNumber NodeKind = iota
	KindIdent
	KindPlaceholder
	KindVector
	KindMatrix
	KindBinary
	KindGroup
)

var nodeKindNames = map[NodeKind]string{
	KindNumber:      "Number",
	KindIdent:       "Ident",
	KindPlaceholder: "Placeholder",
	KindVector:      "Vector",
	KindMatrix:      "Matrix",
	KindBinary:      "Binary",
	KindGroup:       "Group",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Expr is one of Number, Ident, Placeholder, Vector, Matrix, Binary or Group.
// The set is closed; callers switch on the concrete type.
type Expr interface {
	Kind() NodeKind
	Span() Span
	exprNode()
}

type PlaceholderKind string

const (
	ExpectExpression PlaceholderKind = "expression"
	ExpectVector     PlaceholderKind = "vector"
	ExpectMatrix     PlaceholderKind = "matrix"
	ExpectRow        PlaceholderKind = "row"
	ExpectElement    PlaceholderKind = "element"
)

type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDot
	OpCross
)

var opSymbols = map[Op]string{
	OpAdd:   "+",
	OpSub:   "-",
	OpMul:   "*",
	OpDot:   "·",
	OpCross: "×",
}

func (o Op) String() string {
	if s, ok := opSymbols[o]; ok {
		return s
	}
	return "?"
}

// OpForToken maps an operator token to its binary operator.
func OpForToken(kind TokenKind) (Op, bool) {
	switch kind {
	case TokenPlus:
		return OpAdd, true
	case TokenMinus:
		return OpSub, true
	case TokenStar:
		return OpMul, true
	case TokenDot:
		return OpDot, true
	case TokenCross:
		return OpCross, true
	}
	return 0, false
}

type Number struct {
	Value float64
	Loc   Span
}

type Ident struct {
	Name string
	Loc  Span
}

type Placeholder struct {
	Expected PlaceholderKind
	Loc      Span
}

type Vector struct {
	Elements []Expr
	Loc      Span
}

type Matrix struct {
	Rows [][]Expr
	Loc  Span
}

type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
	Loc   Span
}

type Group struct {
	Inner Expr
	Loc   Span
}

func (Number) Kind() NodeKind      { return KindNumber }
func (Ident) Kind() NodeKind       { return KindIdent }
func (Placeholder) Kind() NodeKind { return KindPlaceholder }
func (Vector) Kind() NodeKind      { return KindVector }
func (Matrix) Kind() NodeKind      { return KindMatrix }
func (Binary) Kind() NodeKind      { return KindBinary }
func (Group) Kind() NodeKind       { return KindGroup }

func (n Number) Span() Span      { return n.Loc }
func (n Ident) Span() Span       { return n.Loc }
func (n Placeholder) Span() Span { return n.Loc }
func (n Vector) Span() Span      { return n.Loc }
func (n Matrix) Span() Span      { return n.Loc }
func (n Binary) Span() Span      { return n.Loc }
func (n Group) Span() Span       { return n.Loc }

func (Number) exprNode()      {}
func (Ident) exprNode()       {}
func (Placeholder) exprNode() {}
func (Vector) exprNode()      {}
func (Matrix) exprNode()      {}
func (Binary) exprNode()      {}
func (Group) exprNode()       {}

// Cols returns the length of the first row, or 0 for a matrix without rows.
func (m Matrix) Cols() int {
	if len(m.Rows) == 0 {
		return 0
	}
	return len(m.Rows[0])
}

// IsRectangular reports whether the matrix has at least one row and every
// row has the same length.
func (m Matrix) IsRectangular() bool {
	if len(m.Rows) == 0 {
		return false
	}
	cols := len(m.Rows[0])
	for _, row := range m.Rows[1:] {
		if len(row) != cols {
			return false
		}
	}
	return true
}

// Children returns the direct children of e in source order.
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case Vector:
		return n.Elements
	case Matrix:
		var cells []Expr
		for _, row := range n.Rows {
			cells = append(cells, row...)
		}
		return cells
	case Binary:
		return []Expr{n.Left, n.Right}
	case Group:
		return []Expr{n.Inner}
	}
	return nil
}

// Walk visits e and its descendants depth-first in source order. Returning
// false from fn skips the children of the visited node.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, child := range Children(e) {
		Walk(child, fn)
	}
}

func IsPlaceholder(e Expr) bool {
	_, ok := e.(Placeholder)
	return ok
}

func Dump(e Expr) string {
	var sb strings.Builder
	dump(&sb, e, 0, false)
	return sb.String()
}

func DumpWithPositions(e Expr) string {
	var sb strings.Builder
	dump(&sb, e, 0, true)
	return sb.String()
}

func dump(sb *strings.Builder, e Expr, indent int, showPositions bool) {
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(e.Kind().String())
	if showPositions {
		sb.WriteString(" [" + e.Span().String() + "]")
	}
	switch n := e.(type) {
	case Number:
		sb.WriteString(" " + strconv.FormatFloat(n.Value, 'g', -1, 64))
	case Ident:
		sb.WriteString(" " + n.Name)
	case Placeholder:
		sb.WriteString(" " + string(n.Expected))
	case Binary:
		sb.WriteString(" " + n.Op.String())
	case Matrix:
		sb.WriteString("\n")
		for i, row := range n.Rows {
			sb.WriteString(strings.Repeat("  ", indent+1))
			sb.WriteString("Row " + strconv.Itoa(i) + "\n")
			for _, cell := range row {
				dump(sb, cell, indent+2, showPositions)
			}
		}
		return
	}
	sb.WriteString("\n")
	for _, child := range Children(e) {
		dump(sb, child, indent+1, showPositions)
	}
}
