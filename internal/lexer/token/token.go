package token

import "fmt"

type Token struct {
	Lexeme []byte
	Kind   Kind
	Pos    Pos
}

func New(lexeme []byte, kind Kind, position Pos) *Token {
	return &Token{Lexeme: lexeme, Kind: kind, Pos: position}
}

// Value is the literal source text of the token.
func (token *Token) Value() string {
	return string(token.Lexeme)
}

func (token *Token) IsOpenParen() bool {
	return token.Kind == PAREN && token.Value() == "("
}

func (token *Token) IsCloseParen() bool {
	return token.Kind == PAREN && token.Value() == ")"
}

func (token *Token) String() string {
	return fmt.Sprintf("%s | %s | %s", string(token.Lexeme), token.Kind, token.Pos)
}
