package diag

import (
	"fmt"
)

// Code identifies one failure class. The set is closed: parsing aborts
// on the first failure, so exactly one code surfaces per run.
type Code uint16

const (
	// UnknownCode is the fallback for errors outside the taxonomy.
	UnknownCode Code = 0

	// Lexical failures.
	LexUnknownChar Code = 1001
	LexBadInt      Code = 1002
	LexBadFloat    Code = 1003
	LexBadBool     Code = 1004

	// Syntax failures.
	SynUnexpectedToken Code = 2001
	SynUnexpectedEOF   Code = 2002
)

// ID returns the stable printable identifier, e.g. "E2001".
func (c Code) ID() string {
	return fmt.Sprintf("E%04d", uint16(c))
}

func (c Code) String() string {
	switch c {
	case LexUnknownChar:
		return "LexUnknownChar"
	case LexBadInt:
		return "LexBadInt"
	case LexBadFloat:
		return "LexBadFloat"
	case LexBadBool:
		return "LexBadBool"
	case SynUnexpectedToken:
		return "SynUnexpectedToken"
	case SynUnexpectedEOF:
		return "SynUnexpectedEOF"
	}
	return "UnknownCode"
}
