package parser

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/HicaroD/sexpc/internal/ast"
	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/lexer"
	"github.com/HicaroD/sexpc/internal/lexer/token"
)

const filename = "test.sx"

func parse(t *testing.T, input string) (*ast.Program, *diagnostics.Collector, error) {
	t.Helper()

	collector := diagnostics.New()
	tokens, err := lexer.New(filename, []byte(input), collector).Tokenize()
	if err != nil {
		t.Fatalf("unexpected lex error '%v'", err)
	}
	program, err := New(collector).Parse(tokens)
	return program, collector, err
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected *ast.Program
	}{
		{"", ast.NewProgram()},
		{"42", ast.NewProgram(ast.NewNumberLiteral("42"))},
		{"(f)", ast.NewProgram(ast.NewCallExpr("f"))},
		{
			"(add 2 3)",
			ast.NewProgram(
				ast.NewCallExpr("add", ast.NewNumberLiteral("2"), ast.NewNumberLiteral("3")),
			),
		},
		{
			"(add 2 (sub 3 4))",
			ast.NewProgram(
				ast.NewCallExpr("add",
					ast.NewNumberLiteral("2"),
					ast.NewCallExpr("sub", ast.NewNumberLiteral("3"), ast.NewNumberLiteral("4")),
				),
			),
		},
		{
			"(add 1 2) (sub 3 4)",
			ast.NewProgram(
				ast.NewCallExpr("add", ast.NewNumberLiteral("1"), ast.NewNumberLiteral("2")),
				ast.NewCallExpr("sub", ast.NewNumberLiteral("3"), ast.NewNumberLiteral("4")),
			),
		},
		{
			"(a (b (c (d 1))))",
			ast.NewProgram(
				ast.NewCallExpr("a",
					ast.NewCallExpr("b",
						ast.NewCallExpr("c",
							ast.NewCallExpr("d", ast.NewNumberLiteral("1")),
						),
					),
				),
			),
		},
		{
			"007 (x 00)",
			ast.NewProgram(
				ast.NewNumberLiteral("007"),
				ast.NewCallExpr("x", ast.NewNumberLiteral("00")),
			),
		},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("Parse(%q)", test.input), func(t *testing.T) {
			program, _, err := parse(t, test.input)
			if err != nil {
				t.Fatalf("unexpected error '%v'", err)
			}
			if !reflect.DeepEqual(program, test.expected) {
				t.Errorf("expected %s, got %s", test.expected, program)
			}
		})
	}
}

func TestParseTokens(t *testing.T) {
	tokens := []*token.Token{
		token.New([]byte("("), token.PAREN, token.NewPosition(filename, 1, 1)),
		token.New([]byte("add"), token.NAME, token.NewPosition(filename, 2, 1)),
		token.New([]byte("2"), token.NUMBER, token.NewPosition(filename, 6, 1)),
		token.New([]byte("3"), token.NUMBER, token.NewPosition(filename, 8, 1)),
		token.New([]byte(")"), token.PAREN, token.NewPosition(filename, 9, 1)),
	}

	program, err := New(diagnostics.New()).Parse(tokens)
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}

	expected := &ast.Program{Body: []*ast.Node{
		{
			Kind: ast.KIND_CALL_EXPR,
			Node: &ast.CallExpr{
				Name: "add",
				Params: []*ast.Node{
					{Kind: ast.KIND_NUMBER_LITERAL, Node: &ast.NumberLiteral{Value: "2"}},
					{Kind: ast.KIND_NUMBER_LITERAL, Node: &ast.NumberLiteral{Value: "3"}},
				},
			},
		},
	}}
	if !reflect.DeepEqual(program, expected) {
		t.Errorf("expected %s, got %s", expected, program)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
		pos     token.Pos
	}{
		{"(add 2", "unterminated call", token.Pos{Filename: filename, Line: 1, Column: 1}},
		{"(add 2 (sub 3", "unterminated call", token.Pos{Filename: filename, Line: 1, Column: 8}},
		{"(", "got end of input", token.Pos{Filename: filename, Line: 1, Column: 1}},
		{"()", "expected call name", token.Pos{Filename: filename, Line: 1, Column: 2}},
		{"(2 3)", "expected call name", token.Pos{Filename: filename, Line: 1, Column: 2}},
		{"((add 1))", "expected call name", token.Pos{Filename: filename, Line: 1, Column: 2}},
		{")", "unexpected paren", token.Pos{Filename: filename, Line: 1, Column: 1}},
		{"(add 1))", "unexpected paren", token.Pos{Filename: filename, Line: 1, Column: 8}},
		{"add", "unexpected name", token.Pos{Filename: filename, Line: 1, Column: 1}},
		{"(add x)", "unexpected name", token.Pos{Filename: filename, Line: 1, Column: 6}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("Parse(%q)", test.input), func(t *testing.T) {
			program, collector, err := parse(t, test.input)
			if err == nil {
				t.Fatalf("expected error, got program %s", program)
			}
			if program != nil {
				t.Errorf("expected no program on error, got %s", program)
			}
			if !errors.Is(err, diagnostics.ErrParse) {
				t.Errorf("expected parse error, got '%v'", err)
			}
			if !strings.Contains(err.Error(), test.message) {
				t.Errorf("expected error to contain %q, got '%v'", test.message, err)
			}

			var diag *diagnostics.Diag
			if !errors.As(err, &diag) {
				t.Fatalf("expected *diagnostics.Diag, got %T", err)
			}
			if diag.Pos != test.pos {
				t.Errorf("expected position %s, got %s", test.pos, diag.Pos)
			}
			if len(collector.Diags) != 1 {
				t.Errorf("expected 1 saved diagnostic, got %d", len(collector.Diags))
			}
		})
	}
}

func TestParseSource(t *testing.T) {
	collector := diagnostics.New()
	_, err := New(collector).ParseSource(filename, []byte("(add #)"))
	if !errors.Is(err, diagnostics.ErrLex) {
		t.Fatalf("expected lex error, got '%v'", err)
	}
	if len(collector.Diags) != 1 {
		t.Errorf("expected 1 saved diagnostic, got %d", len(collector.Diags))
	}
}
