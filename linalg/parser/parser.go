package parser

import (
	"fmt"
	"strconv"
)

// Diagnostic is an advisory parse message anchored at a rune offset.
type Diagnostic struct {
	Message string
	Offset  int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at %d", d.Message, d.Offset)
}

// Strings renders diagnostics in their "<message> at <offset>" form.
func Strings(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.String()
	}
	return out
}

type Parser struct {
	tokens []Token
	pos    int
	diags  []Diagnostic
}

// Parse builds an expression tree from tokens. It always returns a tree;
// anything it could not make sense of is represented by Placeholder nodes and
// reported in the diagnostics.
func Parse(tokens []Token) (Expr, []Diagnostic) {
	p := &Parser{tokens: tokens}
	root := p.parseExpression()
	if tok := p.peek(); tok.Kind != TokenEOF {
		p.errorf(tok.Start, "unexpected %s", quote(tok))
	}
	return root, p.diags
}

// ParseString tokenizes and parses text.
func ParseString(text string) (Expr, []Diagnostic) {
	return Parse(Tokenize(text))
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		end := 0
		if len(p.tokens) > 0 {
			end = p.tokens[len(p.tokens)-1].End
		}
		return Token{Kind: TokenEOF, Start: end, End: end}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) && tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) expect(kind TokenKind) (Token, bool) {
	tok := p.peek()
	if tok.Kind == kind {
		p.advance()
		return tok, true
	}
	return tok, false
}

func (p *Parser) errorf(offset int, format string, args ...any) {
	p.diags = append(p.diags, Diagnostic{Message: fmt.Sprintf(format, args...), Offset: offset})
}

// placeholderHere synthesizes an empty operand at the current token without
// consuming it.
func (p *Parser) placeholderHere() Expr {
	tok := p.peek()
	p.errorf(tok.Start, "expected expression")
	return Placeholder{Expected: ExpectExpression, Loc: Span{Start: tok.Start, End: tok.Start}}
}

func (p *Parser) parseExpression() Expr {
	return p.parseAddSub()
}

func (p *Parser) parseAddSub() Expr {
	left := p.parseMul()

	for p.check(TokenPlus) || p.check(TokenMinus) {
		tok := p.advance()
		op, _ := OpForToken(tok.Kind)
		right := p.parseMul()
		left = binary(op, left, right, tok)
	}

	return left
}

func (p *Parser) parseMul() Expr {
	left := p.parsePrimary()

	for p.check(TokenStar) || p.check(TokenDot) || p.check(TokenCross) {
		tok := p.advance()
		op, _ := OpForToken(tok.Kind)
		right := p.parsePrimary()
		left = binary(op, left, right, tok)
	}

	return left
}

func binary(op Op, left, right Expr, opTok Token) Expr {
	loc := left.Span().Union(opTok.Span()).Union(right.Span())
	return Binary{Op: op, Left: left, Right: right, Loc: loc}
}

func (p *Parser) parsePrimary() Expr {
	tok := p.peek()
	switch tok.Kind {
	case TokenNumber:
		p.advance()
		return Number{Value: parseNumber(tok.Value), Loc: tok.Span()}

	case TokenIdent:
		p.advance()
		return Ident{Name: tok.Value, Loc: tok.Span()}

	case TokenLParen:
		return p.parseGroup()

	case TokenLT:
		return p.parseVector()

	case TokenLBracket:
		return p.parseMatrix()

	case TokenEOF, TokenGT, TokenRBracket, TokenRParen, TokenComma, TokenSemicolon:
		return p.placeholderHere()

	default:
		p.advance()
		p.errorf(tok.Start, "unexpected %s", quote(tok))
		return Placeholder{Expected: ExpectExpression, Loc: tok.Span()}
	}
}

// parseNumber converts a number literal. The lexer only produces digit runs
// with at most one dot, so the only possible error is a range error, for which
// ParseFloat already returns ±Inf.
func parseNumber(lit string) float64 {
	v, _ := strconv.ParseFloat(lit, 64)
	return v
}

func (p *Parser) parseGroup() Expr {
	open := p.advance()
	inner := p.parseExpression()
	loc := Span{Start: open.Start}
	if closeTok, ok := p.expect(TokenRParen); ok {
		loc.End = closeTok.End
	} else {
		p.errorf(closeTok.Start, "expected ')'")
		loc.End = closeTok.Start
	}
	loc = loc.Union(inner.Span())
	return Group{Inner: inner, Loc: loc}
}

// slots accumulates the elements of one vector or matrix row. A separator
// appends a provisional placeholder and remembers its index; the next parsed
// element replaces it instead of being appended.
type slots struct {
	elems   []Expr
	pending int
}

func newSlots() *slots {
	return &slots{pending: -1}
}

func (s *slots) separator(sep Token) {
	if len(s.elems) == 0 {
		s.elems = append(s.elems, elementPlaceholder(sep))
	}
	s.elems = append(s.elems, elementPlaceholder(sep))
	s.pending = len(s.elems) - 1
}

func (s *slots) put(e Expr) {
	if s.pending >= 0 {
		s.elems[s.pending] = e
		s.pending = -1
		return
	}
	s.elems = append(s.elems, e)
}

// provisional starts a row with a single pending placeholder.
func (s *slots) provisional(at Token) {
	s.elems = append(s.elems, elementPlaceholder(at))
	s.pending = len(s.elems) - 1
}

// fill closes the row, giving an empty row one zero-width placeholder at
// offset so that rows are never empty.
func (s *slots) fill(offset int) []Expr {
	if len(s.elems) == 0 {
		s.elems = append(s.elems, elementPlaceholder(Token{Start: offset, End: offset}))
	}
	return s.elems
}

func elementPlaceholder(at Token) Expr {
	return Placeholder{Expected: ExpectElement, Loc: at.Span()}
}

func (p *Parser) parseVector() Expr {
	open := p.advance()
	row := newSlots()
	loc := Span{Start: open.Start, End: open.End}

	for {
		tok := p.peek()
		switch tok.Kind {
		case TokenGT:
			p.advance()
			loc.End = tok.End
			return Vector{Elements: row.elems, Loc: loc}

		case TokenEOF, TokenRBracket, TokenRParen:
			p.errorf(tok.Start, "expected '>' to close vector")
			loc.End = max(loc.End, tok.Start)
			return Vector{Elements: row.elems, Loc: loc}

		case TokenComma:
			p.advance()
			row.separator(tok)
			loc.End = tok.End

		case TokenSemicolon:
			p.advance()
			p.errorf(tok.Start, "unexpected ';' in vector")
			loc.End = tok.End

		default:
			elem := p.parseExpression()
			row.put(elem)
			loc = loc.Union(elem.Span())
			p.expectSeparator(TokenGT)
		}
	}
}

func (p *Parser) parseMatrix() Expr {
	open := p.advance()
	var rows [][]Expr
	row := newSlots()
	loc := Span{Start: open.Start, End: open.End}

	for {
		tok := p.peek()
		switch tok.Kind {
		case TokenRBracket:
			p.advance()
			loc.End = tok.End
			rows = append(rows, row.fill(tok.Start))
			return Matrix{Rows: rows, Loc: loc}

		case TokenEOF, TokenGT, TokenRParen:
			p.errorf(tok.Start, "expected ']' to close matrix")
			loc.End = max(loc.End, tok.Start)
			rows = append(rows, row.fill(tok.Start))
			return Matrix{Rows: rows, Loc: loc}

		case TokenComma:
			p.advance()
			row.separator(tok)
			loc.End = tok.End

		case TokenSemicolon:
			p.advance()
			rows = append(rows, row.fill(tok.Start))
			row = newSlots()
			row.provisional(tok)
			loc.End = tok.End

		default:
			elem := p.parseExpression()
			row.put(elem)
			loc = loc.Union(elem.Span())
			p.expectSeparator(TokenRBracket, TokenSemicolon)
		}
	}
}

// expectSeparator records a diagnostic when an element is not followed by a
// comma, one of the given closers, or a token that ends the literal anyway.
func (p *Parser) expectSeparator(closers ...TokenKind) {
	tok := p.peek()
	if tok.Kind == TokenComma || tok.Kind == TokenEOF || tok.Kind.IsCloser() {
		return
	}
	for _, kind := range closers {
		if tok.Kind == kind {
			return
		}
	}
	p.errorf(tok.Start, "expected ',' before %s", quote(tok))
}

func quote(tok Token) string {
	if tok.Kind == TokenEOF {
		return "end of input"
	}
	if tok.Value != "" {
		return "'" + tok.Value + "'"
	}
	return "'" + tok.Kind.String() + "'"
}
