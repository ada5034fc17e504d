package linalg

import (
	"github.com/dhamidi/mathpad/linalg/parser"
	"github.com/dhamidi/mathpad/linalg/simplify"
)

// Result holds everything one pass of the pipeline produces for a source
// text. Tree keeps the source spans for caret mapping; Simplified is meant
// for display only.
type Result struct {
	Source      string
	Tokens      []parser.Token
	Tree        parser.Expr
	Diagnostics []parser.Diagnostic
	Simplified  parser.Expr
}

// FromSource runs tokenizer, parser and simplifier over text.
func FromSource(text string) *Result {
	tokens := parser.Tokenize(text)
	tree, diags := parser.Parse(tokens)
	return &Result{
		Source:      text,
		Tokens:      tokens,
		Tree:        tree,
		Diagnostics: diags,
		Simplified:  simplify.Simplify(tree),
	}
}

// HasPlaceholders reports whether the parsed tree still has empty slots.
func (r *Result) HasPlaceholders() bool {
	return len(Placeholders(r.Tree)) > 0
}

// IsComplete reports whether the source parsed without diagnostics and
// without empty slots.
func (r *Result) IsComplete() bool {
	return len(r.Diagnostics) == 0 && !r.HasPlaceholders()
}

// DiagnosticStrings returns the diagnostics in "<message> at <offset>" form.
func (r *Result) DiagnosticStrings() []string {
	return parser.Strings(r.Diagnostics)
}
