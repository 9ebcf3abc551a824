// Package transform rewrites the s-expression tree into the C-like tree the
// code generators understand.
package transform

import (
	"github.com/HicaroD/sexpc/internal/ast"
	"github.com/HicaroD/sexpc/internal/cast"
)

// context is the slice new sibling nodes are appended to.
type context = *[]*cast.Node

// Transform never writes to program. It fails only when program is not a
// tree the parser could have produced.
func Transform(program *ast.Program) (*cast.Program, error) {
	out := cast.NewProgram()

	visitor := ast.Visitor[context]{
		NumberLiteral: func(number *ast.NumberLiteral, parent *ast.Node, ctx context) context {
			emit(ctx, parent, cast.NewNumberLiteral(number.Value))
			return ctx
		},
		CallExpr: func(call *ast.CallExpr, parent *ast.Node, ctx context) context {
			node := cast.NewCallExpr(call.Name)
			emit(ctx, parent, node)
			return &node.Node.(*cast.CallExpr).Args
		},
	}

	err := ast.Traverse(program, visitor, &out.Body)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Expressions directly under the program become statements, nested ones
// are appended as arguments.
func emit(ctx context, parent *ast.Node, node *cast.Node) {
	if parent.IsProgram() {
		node = cast.NewExprStmt(node)
	}
	*ctx = append(*ctx, node)
}
