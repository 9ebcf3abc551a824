package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/HicaroD/sexpc/internal/codegen/llvm"
	"github.com/HicaroD/sexpc/internal/compiler"
	"github.com/HicaroD/sexpc/internal/config"
	"github.com/HicaroD/sexpc/internal/diagnostics"
)

var DevMode string

func main() {
	config.SetDevMode(DevMode == "1")
	if config.DEV {
		fmt.Println("[DEV MODE] initialized")
	}

	args, err := cli(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	envs, err := config.SetupEnvFile()
	if err != nil {
		log.Fatal(err)
	}

	switch args.Command {
	case COMMAND_HELP:
		fmt.Print(HELP_COMMAND)
	case COMMAND_ENV:
		envs.ShowAll(os.Stdout)
	case COMMAND_BUILD:
		err = applyEnvs(&args, envs)
		if err != nil {
			log.Fatal(err)
		}

		collector := diagnostics.NewWithOutput(os.Stderr)
		err = build(context.Background(), args, collector, os.Stdin, os.Stdout, os.Stderr)
		if errors.Is(err, diagnostics.COMPILER_ERROR_FOUND) {
			// already reported by the collector
			os.Exit(1)
		}
		if err != nil {
			log.Fatal(err)
		}
	}
}

func build(
	ctx context.Context,
	args CliResult,
	collector *diagnostics.Collector,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	units, err := readUnits(args.Files, stdin)
	if err != nil {
		return err
	}

	results, err := compiler.CompileAll(ctx, units, args.Jobs, compiler.WithCollector(collector))
	if err != nil {
		return err
	}

	outputs := make([]string, 0, len(results))
	for _, result := range results {
		if config.DEBUG_MODE {
			dump(stderr, result)
		}

		switch args.Emit {
		case config.EMIT_LLVM:
			moduleName := strings.TrimSuffix(filepath.Base(result.Filename), filepath.Ext(result.Filename))
			ir, err := llvm.Generate(moduleName, result.Target)
			if err != nil {
				return collector.Report(err)
			}
			outputs = append(outputs, ir)
		default:
			if result.Output != "" {
				outputs = append(outputs, result.Output+"\n")
			}
		}
	}

	return writeOutput(args.Output, stdout, strings.Join(outputs, ""))
}

func dump(w io.Writer, result *compiler.Result) {
	fmt.Fprintf(w, "[DEBUG MODE] %s\n", result.Filename)
	fmt.Fprintln(w, "[DEBUG MODE] tokens:")
	for _, tok := range result.Tokens {
		fmt.Fprintf(w, "  %s\n", tok)
	}
	fmt.Fprintf(w, "[DEBUG MODE] source tree: %s\n", result.Source)
	fmt.Fprintf(w, "[DEBUG MODE] target tree: %s\n", result.Target)
}
