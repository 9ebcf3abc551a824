package diagnostics

import (
	"errors"
	"fmt"

	"github.com/HicaroD/sexpc/internal/lexer/token"
)

var (
	COMPILER_ERROR_FOUND = errors.New("compiler error found")

	ErrLex       = errors.New("lex error")
	ErrParse     = errors.New("parse error")
	ErrTraversal = errors.New("traversal error")
	ErrCodeGen   = errors.New("codegen error")
)

type Kind int

const (
	LEX_ERROR Kind = iota
	PARSE_ERROR
	TRAVERSAL_ERROR
	CODEGEN_ERROR
)

func (kind Kind) sentinel() error {
	switch kind {
	case LEX_ERROR:
		return ErrLex
	case PARSE_ERROR:
		return ErrParse
	case TRAVERSAL_ERROR:
		return ErrTraversal
	case CODEGEN_ERROR:
		return ErrCodeGen
	}
	return COMPILER_ERROR_FOUND
}

func (kind Kind) String() string {
	return kind.sentinel().Error()
}

// Diag is a single compiler diagnostic. It is also the error value every
// stage of the pipeline returns, so errors.Is(err, ErrParse) and
// errors.As(err, &diag) both work on a stage's result.
type Diag struct {
	Kind    Kind
	Pos     token.Pos
	Message string
}

func NewDiag(kind Kind, pos token.Pos, format string, args ...any) *Diag {
	return &Diag{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Internal diagnostics have no source position.
func NewInternal(kind Kind, format string, args ...any) *Diag {
	return &Diag{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (diag *Diag) HasPos() bool {
	return diag.Pos.Line > 0
}

func (diag *Diag) Error() string {
	if !diag.HasPos() {
		return fmt.Sprintf("%s: %s", diag.Kind, diag.Message)
	}
	return fmt.Sprintf(
		"%s:%d:%d: %s: %s",
		diag.Pos.Filename,
		diag.Pos.Line,
		diag.Pos.Column,
		diag.Kind,
		diag.Message,
	)
}

func (diag *Diag) Is(target error) bool {
	return target == COMPILER_ERROR_FOUND || target == diag.Kind.sentinel()
}
