package parser

import "unicode"

// Lexer scans expression source one token at a time. Offsets are counted in
// runes so that they line up with caret positions reported by an editor.
type Lexer struct {
	input []rune
	pos   int
}

func NewLexer(text string) *Lexer {
	return &Lexer{input: []rune(text)}
}

// Offset returns the current rune offset.
func (l *Lexer) Offset() int {
	return l.pos
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) rune {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	return ch
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// NextToken returns the next token. Once the input is exhausted it keeps
// returning EOF tokens positioned at the end of the input.
func (l *Lexer) NextToken() Token {
	for !l.atEnd() {
		ch := l.peek()

		if unicode.IsSpace(ch) {
			l.advance()
			continue
		}

		if isDigit(ch) || (ch == '.' && isDigit(l.peekN(1))) {
			return l.scanNumber()
		}

		if isIdentStart(ch) {
			return l.scanIdent()
		}

		if kind, ok := LookupPunctuation(ch); ok {
			start := l.pos
			l.advance()
			return Token{Kind: kind, Value: string(ch), Start: start, End: l.pos}
		}

		// Unknown characters are dropped without a diagnostic.
		l.advance()
	}
	return Token{Kind: TokenEOF, Start: len(l.input), End: len(l.input)}
}

func (l *Lexer) scanNumber() Token {
	start := l.pos
	sawDot := false
	for !l.atEnd() {
		ch := l.peek()
		if isDigit(ch) {
			l.advance()
			continue
		}
		if ch == '.' && !sawDot {
			sawDot = true
			l.advance()
			continue
		}
		break
	}
	return Token{Kind: TokenNumber, Value: string(l.input[start:l.pos]), Start: start, End: l.pos}
}

func (l *Lexer) scanIdent() Token {
	start := l.pos
	for !l.atEnd() && isIdentPart(l.peek()) {
		l.advance()
	}
	return Token{Kind: TokenIdent, Value: string(l.input[start:l.pos]), Start: start, End: l.pos}
}

// Tokenize scans text into a token sequence terminated by a single EOF token.
func Tokenize(text string) []Token {
	l := NewLexer(text)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
