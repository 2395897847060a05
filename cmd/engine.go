package cmd

import (
	"github.com/chriserin/slr/internal/grammar"
	"github.com/chriserin/slr/internal/parser"
	"github.com/chriserin/slr/internal/table"
	"github.com/cockroachdb/errors"
)

// loadTables returns the built-in tables, or the ones at path checked
// against the built-in grammar.
func loadTables(path string) (*table.Tables, error) {
	if path == "" {
		return table.Default(), nil
	}
	t, err := table.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(grammar.Default()); err != nil {
		return nil, errors.Wrapf(err, "validating %s", path)
	}
	return t, nil
}

func newParser(tablesPath string) (*parser.Parser, error) {
	t, err := loadTables(tablesPath)
	if err != nil {
		return nil, err
	}
	return parser.New(grammar.Default(), t), nil
}

func tableSource(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
