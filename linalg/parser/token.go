package parser

import "fmt"

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenNumber
	TokenIdent

	// Operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenDot
	TokenCross

	// Separators
	TokenComma
	TokenSemicolon

	// Delimiters
	TokenLT
	TokenGT
	TokenLBracket
	TokenRBracket
	TokenLParen
	TokenRParen
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:       "EOF",
	TokenNumber:    "Number",
	TokenIdent:     "Ident",
	TokenPlus:      "+",
	TokenMinus:     "-",
	TokenStar:      "*",
	TokenDot:       "·",
	TokenCross:     "×",
	TokenComma:     ",",
	TokenSemicolon: ";",
	TokenLT:        "<",
	TokenGT:        ">",
	TokenLBracket:  "[",
	TokenRBracket:  "]",
	TokenLParen:    "(",
	TokenRParen:    ")",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsCloser reports whether the kind ends a group or literal.
func (k TokenKind) IsCloser() bool {
	return k == TokenGT || k == TokenRBracket || k == TokenRParen
}

// Token is a lexical token. Start and End are rune offsets into the source.
type Token struct {
	Kind  TokenKind
	Value string
	Start int
	End   int
}

func (t Token) Span() Span {
	return Span{Start: t.Start, End: t.End}
}

func (t Token) String() string {
	if t.Kind == TokenNumber || t.Kind == TokenIdent {
		return fmt.Sprintf("%s(%s)@%d-%d", t.Kind, t.Value, t.Start, t.End)
	}
	return fmt.Sprintf("%s@%d-%d", t.Kind, t.Start, t.End)
}

var punctuation = map[rune]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'.': TokenDot,
	'·': TokenDot,
	'×': TokenCross,
	',': TokenComma,
	';': TokenSemicolon,
	'<': TokenLT,
	'>': TokenGT,
	'[': TokenLBracket,
	']': TokenRBracket,
	'(': TokenLParen,
	')': TokenRParen,
}

// LookupPunctuation returns the token kind for a single-character token.
func LookupPunctuation(ch rune) (TokenKind, bool) {
	kind, ok := punctuation[ch]
	return kind, ok
}
