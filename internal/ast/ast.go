// Package ast defines the syntax tree the parser builds from s-expression
// source.
package ast

import (
	"fmt"
	"strings"
)

type NodeKind int

const (
	KIND_PROGRAM NodeKind = iota
	KIND_CALL_EXPR
	KIND_NUMBER_LITERAL
)

func (kind NodeKind) String() string {
	switch kind {
	case KIND_PROGRAM:
		return "KIND_PROGRAM"
	case KIND_CALL_EXPR:
		return "KIND_CALL_EXPR"
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

// CallExpr is a parenthesized call: (name params...).
type CallExpr struct {
	Name   string
	Params []*Node
}

// NumberLiteral keeps the digits exactly as written.
type NumberLiteral struct {
	Value string
}

func NewProgram(body ...*Node) *Program {
	return &Program{Body: body}
}

func NewCallExpr(name string, params ...*Node) *Node {
	return &Node{Kind: KIND_CALL_EXPR, Node: &CallExpr{Name: name, Params: params}}
}

func NewNumberLiteral(value string) *Node {
	return &Node{Kind: KIND_NUMBER_LITERAL, Node: &NumberLiteral{Value: value}}
}

func (n *Node) IsCall() bool {
	return n.Kind == KIND_CALL_EXPR
}

func (n *Node) IsProgram() bool {
	return n.Kind == KIND_PROGRAM
}

func (n *Node) String() string {
	var sb strings.Builder
	n.dump(&sb)
	return sb.String()
}

func (p *Program) String() string {
	return (&Node{Kind: KIND_PROGRAM, Node: p}).String()
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
	case *CallExpr:
		fmt.Fprintf(sb, "CallExpr{Name: %s, Params: ", node.Name)
		dumpList(sb, node.Params)
		sb.WriteString("}")
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
