package lexer

import (
	"os"
	"unicode/utf8"

	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/lexer/token"
)

const eof = '\000'

type Lexer struct {
	Filename  string
	Collector *diagnostics.Collector

	src    []byte
	offset int
	pos    token.Pos
	err    *diagnostics.Diag
}

func New(filename string, src []byte, collector *diagnostics.Collector) *Lexer {
	lexer := new(Lexer)

	lexer.Filename = filename
	lexer.Collector = collector
	lexer.pos = token.NewPosition(filename, 1, 1)
	lexer.src = src
	lexer.offset = 0

	return lexer
}

func NewFromFilePath(path string, collector *diagnostics.Collector) (*Lexer, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l := New(path, src, collector)
	return l, nil
}

// Err returns the diagnostic that stopped the lexer, if any.
func (lex *Lexer) Err() error {
	if lex.err == nil {
		return nil
	}
	return lex.err
}

func (lex *Lexer) Next() *token.Token {
	lex.skipWhitespace()
	character := lex.peekChar()

	tok := &token.Token{}
	tok.Kind = token.INVALID

	if lex.err != nil {
		tok.Pos = lex.pos
		return tok
	}

	if lex.offset >= len(lex.src) {
		lex.consumeTokenNoLex(tok, token.EOF)
		return tok
	}

	return lex.getToken(tok, character)
}

// Tokenize scans the whole source. The EOF sentinel is not part of the
// result.
func (lex *Lexer) Tokenize() ([]*token.Token, error) {
	var tokens []*token.Token
	for {
		tok := lex.Next()
		if tok.Kind == token.INVALID {
			return nil, lex.Err()
		}
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (lex *Lexer) getToken(tok *token.Token, ch byte) *token.Token {
	switch {
	case ch == '(' || ch == ')':
		tok.Kind = token.PAREN
		tok.Pos = lex.pos
		tok.Lexeme = lex.src[lex.offset : lex.offset+1]
		lex.nextChar()
	case isDigit(ch):
		tok.Pos = lex.pos
		tok.Kind = token.NUMBER
		tok.Lexeme = lex.readWhile(isDigit)
	case isLower(ch):
		tok.Pos = lex.pos
		tok.Kind = token.NAME
		tok.Lexeme = lex.readWhile(isLower)
	default:
		tok.Pos = lex.pos
		r, _ := utf8.DecodeRune(lex.src[lex.offset:])
		lex.err = diagnostics.NewDiag(diagnostics.LEX_ERROR, tok.Pos, "unknown character %q", r)
		if lex.Collector != nil {
			lex.Collector.ReportAndSave(*lex.err)
		}
	}
	return tok
}

func (lex *Lexer) consumeTokenNoLex(tok *token.Token, kind token.Kind) {
	tok.Lexeme = nil
	tok.Kind = kind
	tok.Pos = lex.pos
}

func (lex *Lexer) skipWhitespace() {
	lex.readWhile(isSpace)
}

func (lex *Lexer) readWhile(isValid func(byte) bool) []byte {
	var start, end int
	start = lex.offset

	for lex.offset < len(lex.src) {
		if !isValid(lex.peekChar()) {
			break
		}
		lex.nextChar()
	}

	end = lex.offset

	return lex.src[start:end]
}

func (lex *Lexer) nextChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	lex.pos.Move(character)
	lex.offset++
	return character
}

func (lex *Lexer) peekChar() byte {
	if lex.offset >= len(lex.src) {
		return eof
	}
	character := lex.src[lex.offset]
	return character
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
func isLower(ch byte) bool { return ch >= 'a' && ch <= 'z' }
