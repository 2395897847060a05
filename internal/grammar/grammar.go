package grammar

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// EndOfInput is the terminal the parser synthesizes once the tokens run out.
const EndOfInput = "$"

// Production rewrites LHS into the RHS symbols. An empty RHS is an epsilon rule.
type Production struct {
	LHS string
	RHS []string
}

// IsEpsilon reports whether the production derives the empty string.
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

func (p Production) String() string {
	if p.IsEpsilon() {
		return p.LHS + " -> ε"
	}
	return p.LHS + " -> " + strings.Join(p.RHS, " ")
}

// Grammar is an immutable list of productions indexed by id. Production 0 is
// the augmenting production S' -> start.
type Grammar struct {
	productions  []Production
	nonterminals map[string]bool
}

// New builds a grammar from productions. Every symbol that appears as a
// left-hand side is a nonterminal; every other symbol is a terminal.
func New(productions []Production) *Grammar {
	g := &Grammar{
		productions:  make([]Production, len(productions)),
		nonterminals: make(map[string]bool),
	}
	for i, p := range productions {
		g.productions[i] = Production{LHS: p.LHS, RHS: append([]string(nil), p.RHS...)}
		g.nonterminals[p.LHS] = true
	}
	return g
}

// Len returns the number of productions.
func (g *Grammar) Len() int {
	return len(g.productions)
}

// Production returns the production with the given id. An out-of-range id is
// a defect in the caller's tables, not a property of the input.
func (g *Grammar) Production(id int) Production {
	if id < 0 || id >= len(g.productions) {
		panic(errors.AssertionFailedf("production %d out of range [0, %d)", id, len(g.productions)))
	}
	return g.productions[id]
}

// Has reports whether id names a production.
func (g *Grammar) Has(id int) bool {
	return id >= 0 && id < len(g.productions)
}

// Start returns the start symbol, the single right-hand symbol of the
// augmenting production.
func (g *Grammar) Start() string {
	if len(g.productions) == 0 || len(g.productions[0].RHS) != 1 {
		return ""
	}
	return g.productions[0].RHS[0]
}

// IsNonterminal reports whether sym appears on a left-hand side.
func (g *Grammar) IsNonterminal(sym string) bool {
	return g.nonterminals[sym]
}

// Nonterminals returns the left-hand symbols in order of first appearance.
func (g *Grammar) Nonterminals() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range g.productions {
		if !seen[p.LHS] {
			seen[p.LHS] = true
			out = append(out, p.LHS)
		}
	}
	return out
}

// Terminals returns every right-hand symbol that is not a nonterminal,
// sorted.
func (g *Grammar) Terminals() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range g.productions {
		for _, sym := range p.RHS {
			if g.nonterminals[sym] || seen[sym] {
				continue
			}
			seen[sym] = true
			out = append(out, sym)
		}
	}
	sort.Strings(out)
	return out
}

// Alternatives returns the ids of the productions for lhs, in id order.
func (g *Grammar) Alternatives(lhs string) []int {
	var ids []int
	for i, p := range g.productions {
		if p.LHS == lhs {
			ids = append(ids, i)
		}
	}
	return ids
}
