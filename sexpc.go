// Package sexpc compiles a tiny s-expression language of nested calls over
// numeric literals into C-like call statements.
//
//	out, err := sexpc.Compile("(add 2 (sub 3 4))")
//	// out == "add(2, sub(3, 4));"
//
// Each stage is also exposed on its own: Tokenize, Parse, Transform and
// Generate. Every failure is a *Diag; use errors.Is with ErrLex, ErrParse,
// ErrTraversal or ErrCodeGen to tell the stages apart.
package sexpc

import (
	"github.com/HicaroD/sexpc/internal/ast"
	"github.com/HicaroD/sexpc/internal/cast"
	"github.com/HicaroD/sexpc/internal/codegen"
	"github.com/HicaroD/sexpc/internal/compiler"
	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/lexer"
	"github.com/HicaroD/sexpc/internal/lexer/token"
	"github.com/HicaroD/sexpc/internal/parser"
	"github.com/HicaroD/sexpc/internal/transform"
)

type (
	Token         = token.Token
	SourceProgram = ast.Program
	TargetProgram = cast.Program
	Diag          = diagnostics.Diag
)

var (
	ErrLex       = diagnostics.ErrLex
	ErrParse     = diagnostics.ErrParse
	ErrTraversal = diagnostics.ErrTraversal
	ErrCodeGen   = diagnostics.ErrCodeGen
)

func Tokenize(src string) ([]*Token, error) {
	return lexer.New(compiler.DefaultFilename, []byte(src), nil).Tokenize()
}

func Parse(tokens []*Token) (*SourceProgram, error) {
	return parser.New(nil).Parse(tokens)
}

func Transform(program *SourceProgram) (*TargetProgram, error) {
	return transform.Transform(program)
}

func Generate(program *TargetProgram) (string, error) {
	return codegen.GenerateProgram(program)
}

// Compile runs all four stages and returns either the complete output or
// the first error.
func Compile(src string) (string, error) {
	return compiler.Compile(src)
}
