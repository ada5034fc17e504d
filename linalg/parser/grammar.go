package parser

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/ebnf"
)

//go:embed grammar.ebnf
var grammarSource string

// GrammarStart is the start production of the expression grammar.
const GrammarStart = "Expression"

// GrammarSource returns the EBNF text of the well-formed expression language.
// The parser accepts a superset of it: anything outside the grammar is
// recovered with placeholders.
func GrammarSource() string {
	return grammarSource
}

// Grammar parses and verifies the embedded grammar.
func Grammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("grammar.ebnf", strings.NewReader(grammarSource))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, GrammarStart); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// Productions returns the production names of g in sorted order.
func Productions(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
