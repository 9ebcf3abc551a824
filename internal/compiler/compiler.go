// Package compiler chains the lexer, parser, transformer and code generator.
// Every run builds its own tokens and trees, so independent units can be
// compiled concurrently.
package compiler

import (
	"context"

	"github.com/HicaroD/sexpc/internal/ast"
	"github.com/HicaroD/sexpc/internal/cast"
	"github.com/HicaroD/sexpc/internal/codegen"
	"github.com/HicaroD/sexpc/internal/diagnostics"
	"github.com/HicaroD/sexpc/internal/lexer"
	"github.com/HicaroD/sexpc/internal/lexer/token"
	"github.com/HicaroD/sexpc/internal/parser"
	"github.com/HicaroD/sexpc/internal/transform"
	"golang.org/x/sync/errgroup"
)

const DefaultFilename = "<input>"

type Compiler struct {
	filename  string
	collector *diagnostics.Collector
}

type Option func(*Compiler)

// WithFilename sets the name reported in diagnostic positions.
func WithFilename(filename string) Option {
	return func(c *Compiler) {
		c.filename = filename
	}
}

// WithCollector makes every stage report into collector. Collectors are
// safe to share between concurrent runs.
func WithCollector(collector *diagnostics.Collector) Option {
	return func(c *Compiler) {
		c.collector = collector
	}
}

func New(opts ...Option) *Compiler {
	c := &Compiler{filename: DefaultFilename}
	for _, opt := range opts {
		opt(c)
	}
	if c.collector == nil {
		c.collector = diagnostics.New()
	}
	return c
}

// Result keeps every intermediate stage of a run.
type Result struct {
	Filename string
	Tokens   []*token.Token
	Source   *ast.Program
	Target   *cast.Program
	Output   string
}

func (c *Compiler) Run(src []byte) (*Result, error) {
	result := &Result{Filename: c.filename}

	tokens, err := lexer.New(c.filename, src, c.collector).Tokenize()
	if err != nil {
		return nil, err
	}
	result.Tokens = tokens

	program, err := parser.New(c.collector).Parse(tokens)
	if err != nil {
		return nil, err
	}
	result.Source = program

	target, err := transform.Transform(program)
	if err != nil {
		return nil, c.collector.Report(err)
	}
	result.Target = target

	output, err := codegen.GenerateProgram(target)
	if err != nil {
		return nil, c.collector.Report(err)
	}
	result.Output = output

	return result, nil
}

func (c *Compiler) Compile(src string) (string, error) {
	result, err := c.Run([]byte(src))
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

func (c *Compiler) Collector() *diagnostics.Collector {
	return c.collector
}

func Compile(src string) (string, error) {
	return New().Compile(src)
}

type Unit struct {
	Filename string
	Src      []byte
}

// CompileAll compiles every unit through its own pipeline, at most limit at
// a time (no limit when limit <= 0). Results are in unit order. The first
// failure cancels the units that have not started yet and is returned.
func CompileAll(ctx context.Context, units []Unit, limit int, opts ...Option) ([]*Result, error) {
	results := make([]*Result, len(units))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			unitOpts := append(append([]Option(nil), opts...), WithFilename(unit.Filename))
			result, err := New(unitOpts...).Run(unit.Src)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
