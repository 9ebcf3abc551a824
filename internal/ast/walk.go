package ast

import (
	"github.com/HicaroD/sexpc/internal/diagnostics"
)

// Visitor holds one optional handler per node kind. A handler receives the
// node, its parent (nil for the program) and the context its parent handed
// down, and returns the context its own children will receive. A nil
// handler passes the context through unchanged.
type Visitor[C any] struct {
	Program       func(program *Program, parent *Node, ctx C) C
	CallExpr      func(call *CallExpr, parent *Node, ctx C) C
	NumberLiteral func(number *NumberLiteral, parent *Node, ctx C) C
}

// Traverse walks program depth first in pre-order, calling the visitor's
// handler for a node before descending into its children.
func Traverse[C any](program *Program, visitor Visitor[C], ctx C) error {
	root := &Node{Kind: KIND_PROGRAM, Node: program}
	return traverseNode(root, nil, visitor, ctx)
}

func traverseList[C any](nodes []*Node, parent *Node, visitor Visitor[C], ctx C) error {
	for _, node := range nodes {
		err := traverseNode(node, parent, visitor, ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

func traverseNode[C any](node, parent *Node, visitor Visitor[C], ctx C) error {
	if node == nil {
		return diagnostics.NewInternal(diagnostics.TRAVERSAL_ERROR, "nil node")
	}

	switch node.Kind {
	case KIND_PROGRAM:
		program, ok := node.Node.(*Program)
		if !ok || program == nil {
			return mismatch(node)
		}
		if visitor.Program != nil {
			ctx = visitor.Program(program, parent, ctx)
		}
		return traverseList(program.Body, node, visitor, ctx)
	case KIND_CALL_EXPR:
		call, ok := node.Node.(*CallExpr)
		if !ok || call == nil {
			return mismatch(node)
		}
		if visitor.CallExpr != nil {
			ctx = visitor.CallExpr(call, parent, ctx)
		}
		return traverseList(call.Params, node, visitor, ctx)
	case KIND_NUMBER_LITERAL:
		number, ok := node.Node.(*NumberLiteral)
		if !ok || number == nil {
			return mismatch(node)
		}
		if visitor.NumberLiteral != nil {
			visitor.NumberLiteral(number, parent, ctx)
		}
		return nil
	default:
		return diagnostics.NewInternal(diagnostics.TRAVERSAL_ERROR, "unknown node kind %s", node.Kind)
	}
}

func mismatch(node *Node) error {
	return diagnostics.NewInternal(
		diagnostics.TRAVERSAL_ERROR,
		"%s node holds %T",
		node.Kind,
		node.Node,
	)
}
