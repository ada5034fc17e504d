// Package parser tokenizes and parses linear-algebra expressions for a live
// math editor.
//
// # Overview
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│    Text     │────▶│  Tokenize   │────▶│    Parse    │────▶ (Expr, []Diagnostic)
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// The language has numbers, identifiers, vectors <a, b, c>, matrices
// [a, b; c, d], parentheses and the operators + - * · ×. Addition and
// subtraction bind weaker than the three products; everything is
// left-associative and there are no unary operators.
//
// # Error Recovery
//
// Parse never fails. Input is typed one keystroke at a time, so most trees
// it sees are incomplete. Wherever an operand is missing, a Placeholder node
// stands in for it and a Diagnostic is recorded:
//
//	"1+"    Binary(+, Number 1, Placeholder expression)
//	"<1,"   Vector[Number 1, Placeholder element]   expected '>' to close vector at 3
//	"[1;"   Matrix[[Number 1], [Placeholder element]]
//
// Vector and matrix separators materialize the next slot eagerly: after a
// comma the literal already holds a placeholder for the following element,
// and the element typed next replaces it in place.
//
// Unknown characters are skipped by the lexer without any diagnostic.
//
// # Source Spans
//
// Every node carries a half-open Span of rune offsets into the source text.
// Container spans cover their children. Placeholders for missing operands
// are zero-width at the insertion point.
//
// # Thread Safety
//
// Tokenize and Parse are pure functions; trees are never mutated after they
// are built and can be shared between goroutines.
package parser
