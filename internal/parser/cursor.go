package parser

import (
	"github.com/HicaroD/sexpc/internal/lexer/token"
)

type cursor struct {
	offset int
	tokens []*token.Token
}

func newCursor(tokens []*token.Token) *cursor {
	return &cursor{offset: 0, tokens: tokens}
}

// peek returns nil once every token has been consumed.
func (cursor *cursor) peek() *token.Token {
	if cursor.isOutOfBound() {
		return nil
	}
	return cursor.tokens[cursor.offset]
}

func (cursor *cursor) next() *token.Token {
	token := cursor.peek()
	if !cursor.isOutOfBound() {
		cursor.offset++
	}
	return token
}

func (cursor *cursor) skip() {
	cursor.next()
}

func (cursor *cursor) isOutOfBound() bool {
	return cursor.offset >= len(cursor.tokens)
}
