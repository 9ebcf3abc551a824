package main

import (
	"io"
	"os"

	"github.com/HicaroD/sexpc/internal/compiler"
	"github.com/HicaroD/sexpc/internal/config"
)

// applyEnvs fills in whatever the command line left unset.
func applyEnvs(args *CliResult, envs *config.Envs) error {
	if !args.EmitSet {
		emit, err := envs.Emit()
		if err != nil {
			return err
		}
		args.Emit = emit
	}
	if envs.Dump() {
		args.Dump = true
	}
	config.SetDebugMode(args.Dump)
	return nil
}

func readUnits(files []string, stdin io.Reader) ([]compiler.Unit, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}

	units := make([]compiler.Unit, 0, len(files))
	for _, file := range files {
		var src []byte
		var err error

		if file == "-" {
			src, err = io.ReadAll(stdin)
			file = compiler.DefaultFilename
		} else {
			src, err = os.ReadFile(file)
		}
		if err != nil {
			return nil, err
		}
		units = append(units, compiler.Unit{Filename: file, Src: src})
	}
	return units, nil
}

func writeOutput(path string, stdout io.Writer, content string) error {
	if path == "" {
		_, err := io.WriteString(stdout, content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
