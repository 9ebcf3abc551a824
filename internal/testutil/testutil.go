package testutil

import (
	"testing"

	"github.com/HicaroD/sexpc/internal/ast"
	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/lexer"
	"github.com/HicaroD/sexpc/internal/lexer/token"
	"github.com/HicaroD/sexpc/internal/parser"
)

const DefaultFilename = "test.sx"

func NewLexer(src []byte, filename string) *lexer.Lexer {
	if filename == "" {
		filename = DefaultFilename
	}
	collector := diagnostics.New()
	return lexer.New(filename, src, collector)
}

func MustTokenize(t testing.TB, src string) []*token.Token {
	t.Helper()
	tokens, err := NewLexer([]byte(src), "").Tokenize()
	if err != nil {
		t.Fatalf("unexpected lex error for %q: %v", src, err)
	}
	return tokens
}

func MustParse(t testing.TB, src string) *ast.Program {
	t.Helper()
	program, err := parser.New(diagnostics.New()).Parse(MustTokenize(t, src))
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}
	return program
}
