package config

import "fmt"

type EmitType int

const (
	EMIT_C EmitType = iota
	EMIT_LLVM
)

func (et EmitType) String() string {
	switch et {
	case EMIT_C:
		return "c"
	case EMIT_LLVM:
		return "llvm"
	}
	return "unknown"
}

func ParseEmitType(value string) (EmitType, error) {
	switch value {
	case "c", "":
		return EMIT_C, nil
	case "llvm":
		return EMIT_LLVM, nil
	}
	return EMIT_C, fmt.Errorf("unknown emit target %q, expected 'c' or 'llvm'", value)
}
