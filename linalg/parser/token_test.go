package parser

import "testing"

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{TokenEOF, "EOF"},
		{TokenNumber, "Number"},
		{TokenDot, "·"},
		{TokenCross, "×"},
		{TokenKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: TokenNumber, Value: "12", Start: 3, End: 5}, "Number(12)@3-5"},
		{Token{Kind: TokenIdent, Value: "x", Start: 0, End: 1}, "Ident(x)@0-1"},
		{Token{Kind: TokenComma, Value: ",", Start: 1, End: 2}, ",@1-2"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTokenKindIsCloser(t *testing.T) {
	for _, kind := range []TokenKind{TokenGT, TokenRBracket, TokenRParen} {
		if !kind.IsCloser() {
			t.Errorf("%v.IsCloser() = false, want true", kind)
		}
	}
	for _, kind := range []TokenKind{TokenLT, TokenComma, TokenEOF, TokenSemicolon} {
		if kind.IsCloser() {
			t.Errorf("%v.IsCloser() = true, want false", kind)
		}
	}
}
