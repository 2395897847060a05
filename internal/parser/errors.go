package parser

import "fmt"

// ErrorKind classifies a rejected input.
type ErrorKind int

const (
	// UnexpectedToken means the ACTION table has no entry for the state and
	// lookahead.
	UnexpectedToken ErrorKind = iota
	// MissingGoto means the GOTO table has no entry for the state exposed by
	// a reduction and the reduced nonterminal.
	MissingGoto
	// ErrorAction means the ACTION table holds an explicit error entry for
	// the state and lookahead.
	ErrorAction
)

func (k ErrorKind) String() string {
	switch k {
	case MissingGoto:
		return "missing goto"
	case ErrorAction:
		return "error action"
	default:
		return "unexpected token"
	}
}

// Error describes why a token sequence was rejected. Pos is the zero-based
// index of Token in the input; Token is $ once the input is exhausted. For
// MissingGoto, State is the state exposed by the reduction and Nonterminal
// the reduced left-hand side.
type Error struct {
	Kind        ErrorKind
	Token       string
	Pos         int
	State       int
	Nonterminal string
}

func (e *Error) Error() string {
	if e.Kind == MissingGoto {
		return fmt.Sprintf("no goto for %s from state %d at token %q (position %d)", e.Nonterminal, e.State, e.Token, e.Pos)
	}
	return fmt.Sprintf("unexpected token %q at position %d in state %d", e.Token, e.Pos, e.State)
}
