// Package codegen renders the C-like tree as source text.
package codegen

import (
	"strings"

	"github.com/HicaroD/sexpc/internal/cast"
	"github.com/HicaroD/sexpc/internal/diagnostics"
)

type emitter struct {
	sb strings.Builder
}

// Generate renders node and everything below it. A program renders one
// statement per line, with no trailing newline.
func Generate(node *cast.Node) (string, error) {
	e := new(emitter)
	if err := e.gen(node); err != nil {
		return "", err
	}
	return e.sb.String(), nil
}

func GenerateProgram(program *cast.Program) (string, error) {
	return Generate(program.Node())
}

func (e *emitter) gen(node *cast.Node) error {
	if node == nil {
		return diagnostics.NewInternal(diagnostics.CODEGEN_ERROR, "nil node")
	}

	switch node.Kind {
	case cast.KIND_PROGRAM:
		program, err := payload[*cast.Program](node)
		if err != nil {
			return err
		}
		for i, stmt := range program.Body {
			if i > 0 {
				e.sb.WriteByte('\n')
			}
			if err := e.gen(stmt); err != nil {
				return err
			}
		}
	case cast.KIND_EXPR_STMT:
		stmt, err := payload[*cast.ExprStmt](node)
		if err != nil {
			return err
		}
		if err := e.gen(stmt.Expr); err != nil {
			return err
		}
		e.sb.WriteByte(';')
	case cast.KIND_CALL_EXPR:
		call, err := payload[*cast.CallExpr](node)
		if err != nil {
			return err
		}
		if call.Callee == nil {
			return diagnostics.NewInternal(diagnostics.CODEGEN_ERROR, "call without callee")
		}
		if err := e.gen(&cast.Node{Kind: cast.KIND_IDENT, Node: call.Callee}); err != nil {
			return err
		}
		e.sb.WriteByte('(')
		for i, arg := range call.Args {
			if i > 0 {
				e.sb.WriteString(", ")
			}
			if err := e.gen(arg); err != nil {
				return err
			}
		}
		e.sb.WriteByte(')')
	case cast.KIND_IDENT:
		ident, err := payload[*cast.Ident](node)
		if err != nil {
			return err
		}
		e.sb.WriteString(ident.Name)
	case cast.KIND_NUMBER_LITERAL:
		number, err := payload[*cast.NumberLiteral](node)
		if err != nil {
			return err
		}
		e.sb.WriteString(number.Value)
	default:
		return diagnostics.NewInternal(diagnostics.CODEGEN_ERROR, "unknown node kind %s", node.Kind)
	}
	return nil
}

func payload[T any](node *cast.Node) (T, error) {
	n, ok := node.Node.(T)
	if !ok {
		return n, diagnostics.NewInternal(diagnostics.CODEGEN_ERROR, "%s node holds %T", node.Kind, node.Node)
	}
	return n, nil
}
