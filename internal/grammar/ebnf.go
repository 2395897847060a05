package grammar

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/ebnf"
)

// EBNF renders the grammar, without its augmenting production, in the EBNF
// notation of golang.org/x/exp/ebnf. Nonterminals with an epsilon alternative
// become options; terminals become lexical productions matching their own
// name.
func (g *Grammar) EBNF() string {
	var b strings.Builder
	augmented := ""
	if len(g.productions) > 0 {
		augmented = g.productions[0].LHS
	}

	for _, lhs := range g.Nonterminals() {
		if lhs == augmented {
			continue
		}
		var alts []string
		optional := false
		for _, id := range g.Alternatives(lhs) {
			p := g.productions[id]
			if p.IsEpsilon() {
				optional = true
				continue
			}
			alts = append(alts, strings.Join(p.RHS, " "))
		}
		body := strings.Join(alts, " | ")
		if optional {
			body = "[ " + body + " ]"
		}
		fmt.Fprintf(&b, "%s = %s .\n", lhs, body)
	}

	for _, t := range g.Terminals() {
		fmt.Fprintf(&b, "%s = %q .\n", t, t)
	}
	return b.String()
}

// Verify checks the grammar's EBNF rendering: every referenced symbol is
// defined and every production is reachable from the start symbol.
func (g *Grammar) Verify() error {
	start := g.Start()
	if start == "" {
		return errors.New("grammar has no augmenting production")
	}
	parsed, err := ebnf.Parse("grammar.ebnf", strings.NewReader(g.EBNF()))
	if err != nil {
		return errors.Wrap(err, "parsing grammar as ebnf")
	}
	if err := ebnf.Verify(parsed, start); err != nil {
		return errors.Wrapf(err, "verifying grammar from %s", start)
	}
	return nil
}
