// Package parser runs the SLR(1) shift/reduce automaton over a sequence of
// terminal names and builds the concrete parse tree.
package parser

import (
	"github.com/chriserin/slr/internal/grammar"
	"github.com/chriserin/slr/internal/table"
	"github.com/cockroachdb/errors"
	"github.com/tliron/commonlog"
)

// Step describes one action taken by the automaton. Depth is the number of
// tree nodes on the stack after the action.
type Step struct {
	Action table.Action
	State  int
	Token  string
	Pos    int
	Depth  int
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger traces every step to log at debug level.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithObserver calls fn after every shift, reduce and accept.
func WithObserver(fn func(Step)) Option {
	return func(p *Parser) {
		p.observe = fn
	}
}

// Parser parses token sequences against a grammar and its tables. A Parser
// holds no per-parse state and may be used from several goroutines.
type Parser struct {
	g       *grammar.Grammar
	t       *table.Tables
	log     commonlog.Logger
	observe func(Step)
}

// New returns a parser for g driven by t.
func New(g *grammar.Grammar, t *table.Tables, opts ...Option) *Parser {
	p := &Parser{
		g:   g,
		t:   t,
		log: commonlog.GetLogger("slr.parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// entry pairs an automaton state with the tree node that led into it. The
// bottom entry holds the initial state and no node, so the state stack and
// the node stack always move together.
type entry struct {
	state int
	node  *Node
}

// visit records a reduction taken in state with the stack at height.
type visit struct {
	state, height int
}

// loops reports whether reducing in state at height repeats an earlier visit
// of the same run: the same state at the same height, or at a greater height
// without the stack having dropped back to the earlier visit. Either way the
// automaton would reduce forever without shifting.
func loops(run []visit, state, height int) bool {
	low := height
	for i := len(run) - 1; i >= 0; i-- {
		v := run[i]
		if v.state == state && (v.height == height || v.height < low) {
			return true
		}
		low = min(low, v.height)
	}
	return false
}

// Parse runs the automaton over tokens, which must be terminal names without
// an end marker. It returns the root of the parse tree, or an *Error when
// the input is rejected. Tables that contradict the grammar (an unknown
// production, a reduction deeper than the stack, a reduction cycle) are
// defects and panic.
func (p *Parser) Parse(tokens []string) (*Node, error) {
	stack := []entry{{state: 0}}
	pos := 0
	// reductions since the last shift
	var run []visit

	for {
		state := stack[len(stack)-1].state
		at, token := pos, grammar.EndOfInput
		if pos < len(tokens) {
			token = tokens[pos]
		}
		p.log.Debugf("state %d, token %s", state, token)

		action, ok := p.t.Action(state, token)
		if !ok {
			return nil, &Error{Kind: UnexpectedToken, Token: token, Pos: pos, State: state}
		}

		switch action.Kind {
		case table.Shift:
			stack = append(stack, entry{state: action.Target, node: NewLeaf(token)})
			pos++
			run = run[:0]

		case table.Reduce:
			if loops(run, state, len(stack)) {
				panic(errors.AssertionFailedf("reduction cycle in state %d at stack height %d on %q", state, len(stack), token))
			}
			run = append(run, visit{state: state, height: len(stack)})

			prod := p.g.Production(action.Target)
			n := len(prod.RHS)
			if n >= len(stack) {
				panic(errors.AssertionFailedf("reducing %s pops %d entries from a stack of %d", prod, n, len(stack)-1))
			}
			p.log.Debugf("reduce %s", prod)

			children := make([]*Node, n)
			for i, e := range stack[len(stack)-n:] {
				children[i] = e.node
			}
			stack = stack[:len(stack)-n]

			exposed := stack[len(stack)-1].state
			next, ok := p.t.Goto(exposed, prod.LHS)
			if !ok {
				return nil, &Error{Kind: MissingGoto, Token: token, Pos: pos, State: exposed, Nonterminal: prod.LHS}
			}
			stack = append(stack, entry{state: next, node: NewNonTerminal(prod.LHS, children)})

		case table.Accept:
			if len(stack) != 2 {
				panic(errors.AssertionFailedf("accept in state %d with %d nodes on the stack", state, len(stack)-1))
			}
			p.notify(action, state, token, at, 1)
			return stack[1].node, nil

		default:
			return nil, &Error{Kind: ErrorAction, Token: token, Pos: pos, State: state}
		}

		p.notify(action, state, token, at, len(stack)-1)
	}
}

func (p *Parser) notify(action table.Action, state int, token string, pos, depth int) {
	if p.observe == nil {
		return
	}
	p.observe(Step{Action: action, State: state, Token: token, Pos: pos, Depth: depth})
}
