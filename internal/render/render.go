// Package render writes parse outcomes to output files.
package render

import (
	"fmt"
	"io"

	"github.com/chriserin/slr/internal/parser"
	"github.com/cockroachdb/errors"
)

// Success is the first line written for an accepted input.
const Success = "Parsing successful!"

// Formats lists the accepted values of Write's format argument.
var Formats = []string{"text", "json", "dot"}

// Write renders the outcome of a parse in the named format.
func Write(w io.Writer, format string, root *parser.Node, err error) error {
	switch format {
	case "text", "":
		return Text(w, root, err)
	case "json":
		return JSON(w, root, err)
	case "dot":
		return DOT(w, root, err)
	default:
		return errors.Newf("unknown format: %s", format)
	}
}

// Text writes the confirmation line and indented tree for an accepted input,
// or the diagnostic lines for a rejected one.
func Text(w io.Writer, root *parser.Node, err error) error {
	if err != nil {
		_, werr := io.WriteString(w, Diagnostic(err))
		return werr
	}
	if _, werr := fmt.Fprintln(w, Success); werr != nil {
		return werr
	}
	return root.Render(w)
}

// Diagnostic formats a parse failure, one "Error:" line per fact.
func Diagnostic(err error) string {
	var perr *parser.Error
	if !errors.As(err, &perr) {
		return fmt.Sprintf("Error: %v\n", err)
	}
	switch perr.Kind {
	case parser.MissingGoto:
		return fmt.Sprintf("Error: No GOTO for production '%s' from state %d\nError: Unexpected token '%s' at position %d\n",
			perr.Nonterminal, perr.State, perr.Token, perr.Pos)
	default:
		// explicit error cells read the same as missing ones
		return fmt.Sprintf("Error: Unexpected token '%s' at position %d\nError: No ACTION entry for state %d and token '%s'\n",
			perr.Token, perr.Pos, perr.State, perr.Token)
	}
}
