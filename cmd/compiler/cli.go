package main

import (
	"fmt"
	"strconv"

	"github.com/HicaroD/sexpc/internal/config"
)

type Command int

const (
	COMMAND_BUILD Command = iota
	COMMAND_HELP
	COMMAND_ENV
)

type CliResult struct {
	Command Command
	Files   []string // empty or "-" reads stdin
	Output  string   // empty writes to stdout
	Jobs    int

	Emit    config.EmitType
	EmitSet bool
	Dump    bool
}

var HELP_COMMAND string = `sexpc - compiles s-expression calls into C-like call statements.

Usage:
  sexpc <command> [arguments]

Available Commands:
  build [files...] [-emit c|llvm] [-dump] [-o file] [-j n]   Compiles the files
      [files...]    Source files, reads stdin when omitted or "-"
      -emit         Output language, "c" (default) or "llvm" IR
      -dump         Print tokens and both syntax trees to stderr
      -o            Write the output to a file instead of stdout
      -j            Compile at most n files at a time (0 means no limit)

  env                               Show environment information

  help                              Show this help message

Examples:
  echo "(add 2 (sub 3 4))" | sexpc build
  sexpc build a.sx b.sx -o out.c
  sexpc build prog.sx -emit llvm
`

func cli(args []string) (CliResult, error) {
	result := CliResult{}

	if len(args) == 0 {
		result.Command = COMMAND_HELP
		return result, nil
	}

	command := args[0]
	switch command {
	case "env":
		result.Command = COMMAND_ENV
	case "help", "-h", "-help", "--help":
		result.Command = COMMAND_HELP
	case "build":
		result.Command = COMMAND_BUILD
		return parseBuildArgs(result, args[1:])
	default:
		return result, fmt.Errorf("unknown command %q, run 'sexpc help'", command)
	}
	return result, nil
}

func parseBuildArgs(result CliResult, args []string) (CliResult, error) {
	stdinSeen := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-dump":
			result.Dump = true
		case "-emit", "-o", "-j":
			if i+1 >= len(args) {
				return result, fmt.Errorf("flag %s expects a value", arg)
			}
			i++
			value := args[i]

			switch arg {
			case "-emit":
				emit, err := config.ParseEmitType(value)
				if err != nil {
					return result, err
				}
				result.Emit = emit
				result.EmitSet = true
			case "-o":
				result.Output = value
			case "-j":
				jobs, err := strconv.Atoi(value)
				if err != nil || jobs < 0 {
					return result, fmt.Errorf("invalid value %q for -j", value)
				}
				result.Jobs = jobs
			}
		default:
			if len(arg) > 1 && arg[0] == '-' {
				return result, fmt.Errorf("unknown flag %q", arg)
			}
			if arg == "-" {
				if stdinSeen {
					return result, fmt.Errorf("stdin (\"-\") given more than once")
				}
				stdinSeen = true
			}
			result.Files = append(result.Files, arg)
		}
	}
	return result, nil
}
