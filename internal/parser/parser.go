package parser

import (
	"github.com/HicaroD/sexpc/internal/ast"
	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/lexer"
	"github.com/HicaroD/sexpc/internal/lexer/token"
)

type Parser struct {
	cursor    *cursor
	collector *diagnostics.Collector
}

func New(collector *diagnostics.Collector) *Parser {
	parser := new(Parser)
	parser.cursor = nil
	parser.collector = collector
	return parser
}

// ParseSource tokenizes src and parses the result.
func (p *Parser) ParseSource(filename string, src []byte) (*ast.Program, error) {
	lex := lexer.New(filename, src, p.collector)
	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, err
	}
	return p.Parse(tokens)
}

// Parse builds the program out of every token in tokens. The first
// malformed expression aborts parsing.
func (p *Parser) Parse(tokens []*token.Token) (*ast.Program, error) {
	p.cursor = newCursor(tokens)

	program := ast.NewProgram()
	for !p.cursor.isOutOfBound() {
		node, err := p.walk()
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, node)
	}

	return program, nil
}

func (p *Parser) walk() (*ast.Node, error) {
	tok := p.cursor.peek()

	switch {
	case tok.Kind == token.NUMBER:
		p.cursor.skip()
		return ast.NewNumberLiteral(tok.Value()), nil
	case tok.IsOpenParen():
		return p.parseCallExpr()
	default:
		return nil, p.error(tok.Pos, "unexpected %s token %q", tok.Kind, tok.Value())
	}
}

func (p *Parser) parseCallExpr() (*ast.Node, error) {
	openParen := p.cursor.next()

	name := p.cursor.next()
	if name == nil {
		return nil, p.error(openParen.Pos, "expected call name after '(', got end of input")
	}
	if name.Kind != token.NAME {
		return nil, p.error(name.Pos, "expected call name after '(', got %s token %q", name.Kind, name.Value())
	}

	call := &ast.CallExpr{Name: name.Value()}
	for {
		tok := p.cursor.peek()
		if tok == nil {
			return nil, p.error(openParen.Pos, "unterminated call to %q, expected ')'", call.Name)
		}
		if tok.IsCloseParen() {
			p.cursor.skip()
			break
		}

		param, err := p.walk()
		if err != nil {
			return nil, err
		}
		call.Params = append(call.Params, param)
	}

	return &ast.Node{Kind: ast.KIND_CALL_EXPR, Node: call}, nil
}

func (p *Parser) error(pos token.Pos, format string, args ...any) error {
	diag := diagnostics.NewDiag(diagnostics.PARSE_ERROR, pos, format, args...)
	if p.collector != nil {
		p.collector.ReportAndSave(*diag)
	}
	return diag
}
