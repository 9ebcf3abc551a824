package token

import "fmt"

type Kind int

const (
	// EOF
	EOF Kind = iota
	INVALID

	// ( or )
	PAREN

	// run of ASCII digits
	NUMBER

	// run of ASCII lowercase letters
	NAME
)

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "EOF"
	case INVALID:
		return "INVALID"
	case PAREN:
		return "paren"
	case NUMBER:
		return "number"
	case NAME:
		return "name"
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}
