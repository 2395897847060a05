package table

import (
	"github.com/chriserin/slr/internal/grammar"
	"github.com/cockroachdb/errors"
)

// Validate checks that the tables fit g: every reduce names a production,
// every shift and goto leads to a state with actions, ACTION columns are
// terminals, GOTO columns are nonterminals, and some cell accepts. Tables
// that pass cannot trip the parser's defect checks on an invalid production
// id; they may still reject every input.
func (t *Tables) Validate(g *grammar.Grammar) error {
	if _, ok := t.actions[0]; !ok {
		return errors.New("state 0 has no actions")
	}

	accepts := false
	for _, state := range t.States() {
		for _, sym := range sortedKeys(t.actions[state]) {
			a := t.actions[state][sym]
			if g.IsNonterminal(sym) {
				return errors.Newf("state %d: ACTION column %q is a nonterminal", state, sym)
			}
			switch a.Kind {
			case Shift:
				if _, ok := t.actions[a.Target]; !ok {
					return errors.Newf("state %d on %q: shift to state %d with no actions", state, sym, a.Target)
				}
			case Reduce:
				if !g.Has(a.Target) {
					return errors.Newf("state %d on %q: reduce by unknown production %d", state, sym, a.Target)
				}
			case Accept:
				accepts = true
			}
		}
		for _, sym := range sortedKeys(t.gotos[state]) {
			next := t.gotos[state][sym]
			if !g.IsNonterminal(sym) {
				return errors.Newf("state %d: GOTO column %q is not a nonterminal", state, sym)
			}
			if _, ok := t.actions[next]; !ok {
				return errors.Newf("state %d on %q: goto state %d with no actions", state, sym, next)
			}
		}
	}
	if !accepts {
		return errors.New("no state accepts")
	}
	return nil
}

func sortedKeys[V any](row map[string]V) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	return columns(keys)
}
