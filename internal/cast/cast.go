// Package cast defines the C-like syntax tree the transformer produces and
// the code generators consume.
package cast

import (
	"fmt"
	"strings"
)

type NodeKind int

const (
	KIND_PROGRAM NodeKind = iota
	KIND_EXPR_STMT
	KIND_CALL_EXPR
	KIND_IDENT
	KIND_NUMBER_LITERAL
)

func (kind NodeKind) String() string {
	switch kind {
	case KIND_PROGRAM:
		return "KIND_PROGRAM"
	case KIND_EXPR_STMT:
		return "KIND_EXPR_STMT"
	case KIND_CALL_EXPR:
		return "KIND_CALL_EXPR"
	case KIND_IDENT:
		return "KIND_IDENT"
	case KIND_NUMBER_LITERAL:
		return "KIND_NUMBER_LITERAL"
	default:
		return fmt.Sprintf("Unknown Node Kind: %d", int(kind))
	}
}

type Node struct {
	Kind NodeKind
	Node any
}

type Program struct {
	Body []*Node
}

type ExprStmt struct {
	Expr *Node
}

type CallExpr struct {
	Callee *Ident
	Args   []*Node
}

type Ident struct {
	Name string
}

type NumberLiteral struct {
	Value string
}

func NewProgram(body ...*Node) *Program {
	return &Program{Body: body}
}

func NewExprStmt(expr *Node) *Node {
	return &Node{Kind: KIND_EXPR_STMT, Node: &ExprStmt{Expr: expr}}
}

// NewCallExpr always allocates Args so that a call without arguments and a
// call built up argument by argument compare equal.
func NewCallExpr(callee string, args ...*Node) *Node {
	if args == nil {
		args = []*Node{}
	}
	return &Node{Kind: KIND_CALL_EXPR, Node: &CallExpr{Callee: &Ident{Name: callee}, Args: args}}
}

func NewIdent(name string) *Node {
	return &Node{Kind: KIND_IDENT, Node: &Ident{Name: name}}
}

func NewNumberLiteral(value string) *Node {
	return &Node{Kind: KIND_NUMBER_LITERAL, Node: &NumberLiteral{Value: value}}
}

func (p *Program) Node() *Node {
	return &Node{Kind: KIND_PROGRAM, Node: p}
}

func (p *Program) String() string {
	return p.Node().String()
}

func (n *Node) String() string {
	var sb strings.Builder
	n.dump(&sb)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder) {
	if n == nil {
		sb.WriteString("<nil>")
		return
	}
	switch node := n.Node.(type) {
	case *Program:
		sb.WriteString("Program{Body: ")
		dumpList(sb, node.Body)
		sb.WriteString("}")
	case *ExprStmt:
		sb.WriteString("ExprStmt{Expr: ")
		node.Expr.dump(sb)
		sb.WriteString("}")
	case *CallExpr:
		fmt.Fprintf(sb, "CallExpr{Callee: Ident{Name: %s}, Args: ", node.Callee.Name)
		dumpList(sb, node.Args)
		sb.WriteString("}")
	case *Ident:
		fmt.Fprintf(sb, "Ident{Name: %s}", node.Name)
	case *NumberLiteral:
		fmt.Fprintf(sb, "NumberLiteral{Value: %s}", node.Value)
	default:
		fmt.Fprintf(sb, "<%s>", n.Kind)
	}
}

func dumpList(sb *strings.Builder, nodes []*Node) {
	sb.WriteString("[")
	for i, node := range nodes {
		if i > 0 {
			sb.WriteString(", ")
		}
		node.dump(sb)
	}
	sb.WriteString("]")
}
