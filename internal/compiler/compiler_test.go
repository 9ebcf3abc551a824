package compiler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/lexer/token"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"42", "42;"},
		{"(add 2 3)", "add(2, 3);"},
		{"(add 2 (sub 3 4))", "add(2, sub(3, 4));"},
		{"(add 1 2) (sub 3 4)", "add(1, 2);\nsub(3, 4);"},
		{"(f)", "f();"},
		{"\n  (concat\n\t(f 1)\n\t(g 2 (h))\n  )\n", "concat(f(1), g(2, h()));"},
		{"(big 99999999999999999999999999)", "big(99999999999999999999999999);"},
		{"(pad 007)", "pad(007);"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("Compile(%q)", test.input), func(t *testing.T) {
			output, err := Compile(test.input)
			if err != nil {
				t.Fatalf("unexpected error '%v'", err)
			}
			if output != test.expected {
				t.Errorf("expected %q, got %q", test.expected, output)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
	}{
		{"(add 2", diagnostics.ErrParse},
		{"(add 2 #)", diagnostics.ErrLex},
		{"#", diagnostics.ErrLex},
		{"()", diagnostics.ErrParse},
		{")", diagnostics.ErrParse},
		{"(ADD 1)", diagnostics.ErrLex},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("Compile(%q)", test.input), func(t *testing.T) {
			output, err := Compile(test.input)
			if err == nil {
				t.Fatalf("expected error, got %q", output)
			}
			if output != "" {
				t.Errorf("expected no partial output, got %q", output)
			}
			if !errors.Is(err, test.kind) {
				t.Errorf("expected %v, got '%v'", test.kind, err)
			}
			if !errors.Is(err, diagnostics.COMPILER_ERROR_FOUND) {
				t.Errorf("expected a compiler diagnostic, got '%v'", err)
			}
		})
	}
}

func TestRunKeepsStages(t *testing.T) {
	result, err := New(WithFilename("stages.sx")).Run([]byte("(add 2 (sub 3 4))"))
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}

	if len(result.Tokens) != 9 {
		t.Errorf("expected 9 tokens, got %d", len(result.Tokens))
	}
	if result.Tokens[0].Pos.Filename != "stages.sx" {
		t.Errorf("expected tokens from stages.sx, got %s", result.Tokens[0].Pos.Filename)
	}
	if result.Source == nil || len(result.Source.Body) != 1 {
		t.Errorf("expected source tree with 1 expression, got %v", result.Source)
	}
	if result.Target == nil || len(result.Target.Body) != 1 {
		t.Errorf("expected target tree with 1 statement, got %v", result.Target)
	}
	if result.Output != "add(2, sub(3, 4));" {
		t.Errorf("unexpected output %q", result.Output)
	}
}

func TestDiagnosticPosition(t *testing.T) {
	var out strings.Builder
	collector := diagnostics.NewWithOutput(&out)

	_, err := New(WithFilename("bad.sx"), WithCollector(collector)).Compile("(add 1\n  (sub 2 $))")

	var diag *diagnostics.Diag
	if !errors.As(err, &diag) {
		t.Fatalf("expected *diagnostics.Diag, got %T", err)
	}
	expected := token.Pos{Filename: "bad.sx", Line: 2, Column: 10}
	if diag.Pos != expected {
		t.Errorf("expected position %s, got %s", expected, diag.Pos)
	}
	if len(collector.Diags) != 1 {
		t.Errorf("expected 1 diagnostic, got %d", len(collector.Diags))
	}
	if want := "bad.sx:2:10: lex error: unknown character '$'\n"; out.String() != want {
		t.Errorf("expected report %q, got %q", want, out.String())
	}
}

func TestCompileAll(t *testing.T) {
	var units []Unit
	var expected []string
	for i := 0; i < 32; i++ {
		units = append(units, Unit{
			Filename: fmt.Sprintf("unit%d.sx", i),
			Src:      []byte(fmt.Sprintf("(add %d (sub %d 1))", i, i)),
		})
		expected = append(expected, fmt.Sprintf("add(%d, sub(%d, 1));", i, i))
	}

	results, err := CompileAll(context.Background(), units, 4)
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	for i, result := range results {
		if result.Filename != units[i].Filename {
			t.Errorf("result %d: expected filename %s, got %s", i, units[i].Filename, result.Filename)
		}
		if result.Output != expected[i] {
			t.Errorf("result %d: expected %q, got %q", i, expected[i], result.Output)
		}
	}
}

func TestCompileAllFailure(t *testing.T) {
	collector := diagnostics.New()
	units := []Unit{
		{Filename: "ok.sx", Src: []byte("(f 1)")},
		{Filename: "bad.sx", Src: []byte("(f 1")},
	}

	results, err := CompileAll(context.Background(), units, 0, WithCollector(collector))
	if err == nil {
		t.Fatalf("expected error, got %v", results)
	}
	if !errors.Is(err, diagnostics.ErrParse) {
		t.Errorf("expected parse error, got '%v'", err)
	}
	if results != nil {
		t.Errorf("expected no results, got %v", results)
	}
	if !collector.HasErrors() {
		t.Errorf("expected shared collector to hold the diagnostic")
	}
}

func TestCompileAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CompileAll(ctx, []Unit{{Filename: "a.sx", Src: []byte("(f)")}}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got '%v'", err)
	}
}
