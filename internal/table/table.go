package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kind is the type of a parsing action.
type Kind int

const (
	// Error marks a cell that rejects its lookahead explicitly. An absent
	// cell rejects it implicitly.
	Error Kind = iota
	Shift
	Reduce
	Accept
)

func (k Kind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return "error"
	}
}

// Action is one ACTION table cell. Target is the next state for Shift and
// the production id for Reduce; it is unused otherwise.
type Action struct {
	Kind   Kind
	Target int
}

func shift(state int) Action { return Action{Kind: Shift, Target: state} }

func reduce(production int) Action { return Action{Kind: Reduce, Target: production} }

func accept() Action { return Action{Kind: Accept} }

// String returns the compact cell notation used in table dumps: s4, r3, acc
// or err.
func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return "s" + strconv.Itoa(a.Target)
	case Reduce:
		return "r" + strconv.Itoa(a.Target)
	case Accept:
		return "acc"
	default:
		return "err"
	}
}

// ParseAction parses the notation produced by Action.String.
func ParseAction(s string) (Action, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "acc":
		return accept(), nil
	case "err":
		return Action{Kind: Error}, nil
	}
	if len(s) < 2 {
		return Action{}, errors.Newf("invalid action %q", s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 0 {
		return Action{}, errors.Newf("invalid action %q", s)
	}
	switch s[0] {
	case 's':
		return shift(n), nil
	case 'r':
		return reduce(n), nil
	}
	return Action{}, errors.Newf("invalid action %q", s)
}

// Tables holds the ACTION and GOTO tables. A Tables value is immutable once
// built and may be shared between concurrent parses.
type Tables struct {
	actions map[int]map[string]Action
	gotos   map[int]map[string]int
}

// New copies actions and gotos into a new Tables.
func New(actions map[int]map[string]Action, gotos map[int]map[string]int) *Tables {
	t := &Tables{
		actions: make(map[int]map[string]Action, len(actions)),
		gotos:   make(map[int]map[string]int, len(gotos)),
	}
	for state, row := range actions {
		cp := make(map[string]Action, len(row))
		for sym, a := range row {
			cp[sym] = a
		}
		t.actions[state] = cp
	}
	for state, row := range gotos {
		cp := make(map[string]int, len(row))
		for sym, next := range row {
			cp[sym] = next
		}
		t.gotos[state] = cp
	}
	return t
}

// Action looks up the action for state on terminal. The second result is
// false when the table has no entry, which rejects the input.
func (t *Tables) Action(state int, terminal string) (Action, bool) {
	a, ok := t.actions[state][terminal]
	return a, ok
}

// Goto looks up the state entered after reducing to nonterminal from state.
func (t *Tables) Goto(state int, nonterminal string) (int, bool) {
	next, ok := t.gotos[state][nonterminal]
	return next, ok
}

// States returns every state with an ACTION or GOTO row, sorted.
func (t *Tables) States() []int {
	seen := make(map[int]bool)
	for s := range t.actions {
		seen[s] = true
	}
	for s := range t.gotos {
		seen[s] = true
	}
	states := make([]int, 0, len(seen))
	for s := range seen {
		states = append(states, s)
	}
	sort.Ints(states)
	return states
}

// Terminals returns the ACTION column keys, sorted with $ last.
func (t *Tables) Terminals() []string {
	var syms []string
	for _, row := range t.actions {
		for sym := range row {
			syms = append(syms, sym)
		}
	}
	return columns(syms)
}

// Nonterminals returns the GOTO column keys, sorted.
func (t *Tables) Nonterminals() []string {
	var syms []string
	for _, row := range t.gotos {
		for sym := range row {
			syms = append(syms, sym)
		}
	}
	return columns(syms)
}

func columns(syms []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, sym := range syms {
		if !seen[sym] {
			seen[sym] = true
			out = append(out, sym)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i] == "$" || out[j] == "$" {
			return out[j] == "$" && out[i] != "$"
		}
		return out[i] < out[j]
	})
	return out
}

// Size returns the number of ACTION and GOTO cells.
func (t *Tables) Size() (actions, gotos int) {
	for _, row := range t.actions {
		actions += len(row)
	}
	for _, row := range t.gotos {
		gotos += len(row)
	}
	return actions, gotos
}

func (t *Tables) String() string {
	actions, gotos := t.Size()
	return fmt.Sprintf("%d states, %d actions, %d gotos", len(t.States()), actions, gotos)
}
