package parser

import (
	"strings"
	"sync"
	"testing"

	"github.com/chriserin/slr/internal/grammar"
	"github.com/chriserin/slr/internal/table"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(sym string) *Node { return NewLeaf(sym) }

func nt(sym string, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return NewNonTerminal(sym, children)
}

func parse(t *testing.T, input string) (*Node, error) {
	t.Helper()
	p := New(grammar.Default(), table.Default())
	return p.Parse(strings.Fields(input))
}

func requireError(t *testing.T, err error) *Error {
	t.Helper()
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok, "want *Error, got %T", err)
	return perr
}

func TestParse_VariableDeclaration(t *testing.T) {
	root, err := parse(t, "vtype id semi")
	require.NoError(t, err)

	want := nt("CODE",
		nt("VDECL", leaf("vtype"), leaf("id"), leaf("semi")),
		nt("CODE"),
	)
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Assignment(t *testing.T) {
	root, err := parse(t, "vtype id assign num semi")
	require.NoError(t, err)

	want := nt("CODE",
		nt("VDECL",
			leaf("vtype"),
			nt("ASSIGN",
				leaf("id"),
				leaf("assign"),
				nt("RHS",
					nt("EXPR",
						nt("TERM", nt("FACTOR", leaf("num")), nt("TERM_TAIL")),
						nt("EXPR_TAIL"),
					),
				),
			),
			leaf("semi"),
		),
		nt("CODE"),
	)
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_LiteralRHS(t *testing.T) {
	for _, lit := range []string{"literal", "character", "boolstr"} {
		root, err := parse(t, "vtype id assign "+lit+" semi")
		require.NoError(t, err, lit)
		assign := root.Children[0].Children[1]
		assert.Equal(t, "ASSIGN", assign.Symbol)
		assert.Equal(t, nt("RHS", leaf(lit)), assign.Children[2])
	}
}

func TestParse_TruncatedAssignment(t *testing.T) {
	_, err := parse(t, "vtype id assign")
	perr := requireError(t, err)
	assert.Equal(t, &Error{Kind: UnexpectedToken, Token: "$", Pos: 3, State: 11}, perr)
}

func TestParse_UnknownToken(t *testing.T) {
	_, err := parse(t, "foo")
	perr := requireError(t, err)
	assert.Equal(t, &Error{Kind: UnexpectedToken, Token: "foo", Pos: 0, State: 0}, perr)
}

func TestParse_EmptyInputIsAccepted(t *testing.T) {
	root, err := parse(t, "")
	require.NoError(t, err)
	assert.Equal(t, nt("CODE"), root)
	assert.Empty(t, root.Leaves())
}

func TestParse_FunctionDeclarationMissesReturnGoto(t *testing.T) {
	_, err := parse(t, "vtype id lparen rparen lbrace return num semi rbrace")
	perr := requireError(t, err)
	assert.Equal(t, &Error{Kind: MissingGoto, Token: "rbrace", Pos: 8, State: 38, Nonterminal: "RETURN"}, perr)
}

func TestParse_ParenthesizedSumMissesTermTailGoto(t *testing.T) {
	_, err := parse(t, "vtype id assign lparen id addsub id rparen semi")
	perr := requireError(t, err)
	assert.Equal(t, &Error{Kind: MissingGoto, Token: "rparen", Pos: 7, State: 20, Nonterminal: "TERM_TAIL"}, perr)
}

func TestParse_LeavesMatchInput(t *testing.T) {
	inputs := []string{
		"vtype id semi",
		"vtype id semi vtype id semi",
		"vtype id assign id addsub num multdiv lparen num rparen semi",
		"vtype id assign lparen num rparen semi vtype id assign literal semi",
	}
	for _, in := range inputs {
		root, err := parse(t, in)
		require.NoError(t, err, in)
		assert.Equal(t, strings.Fields(in), root.Leaves(), in)
	}
}

func TestParse_Deterministic(t *testing.T) {
	for _, in := range []string{"vtype id assign num multdiv id semi", "vtype id assign", "vtype id lparen"} {
		first, firstErr := parse(t, in)
		for i := 0; i < 3; i++ {
			again, againErr := parse(t, in)
			assert.Equal(t, firstErr, againErr, in)
			assert.Equal(t, first, again, in)
		}
	}
}

func TestParse_ObserverSeesLockstepStacks(t *testing.T) {
	var steps []Step
	p := New(grammar.Default(), table.Default(), WithObserver(func(s Step) {
		steps = append(steps, s)
	}))
	_, err := p.Parse([]string{"vtype", "id", "semi"})
	require.NoError(t, err)

	var kinds []string
	for _, s := range steps {
		kinds = append(kinds, s.Action.String())
	}
	assert.Equal(t, []string{"s4", "s7", "s9", "r4", "r3", "r1", "acc"}, kinds)

	depths := []int{1, 2, 3, 1, 2, 1, 1}
	for i, s := range steps {
		assert.Equal(t, depths[i], s.Depth, "step %d", i)
	}
	assert.Equal(t, 3, steps[len(steps)-1].Pos)
	assert.Equal(t, "$", steps[len(steps)-1].Token)
}

func TestParse_EpsilonReductionConsumesNothing(t *testing.T) {
	var steps []Step
	p := New(grammar.Default(), table.Default(), WithObserver(func(s Step) {
		steps = append(steps, s)
	}))
	_, err := p.Parse(nil)
	require.NoError(t, err)

	require.Len(t, steps, 2)
	assert.Equal(t, table.Action{Kind: table.Reduce, Target: 3}, steps[0].Action)
	assert.Equal(t, 1, steps[0].Depth)
	assert.Equal(t, 0, steps[0].Pos)
	assert.Equal(t, table.Accept, steps[1].Action.Kind)
	assert.Equal(t, 0, steps[1].Pos)
}

func TestParse_ConcurrentUse(t *testing.T) {
	p := New(grammar.Default(), table.Default())
	inputs := []string{"vtype id semi", "vtype id assign num semi", "foo", ""}

	var wg sync.WaitGroup
	results := make([]string, 40)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			root, err := p.Parse(strings.Fields(inputs[i%len(inputs)]))
			if err != nil {
				results[i] = err.Error()
				return
			}
			results[i] = root.String()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		root, err := p.Parse(strings.Fields(inputs[i%len(inputs)]))
		want := ""
		if err != nil {
			want = err.Error()
		} else {
			want = root.String()
		}
		assert.Equal(t, want, got)
	}
}

// tiny is S' -> A, A -> x, with an explicit error cell for y.
func tiny() (*grammar.Grammar, map[int]map[string]table.Action, map[int]map[string]int) {
	g := grammar.New([]grammar.Production{
		{LHS: "S'", RHS: []string{"A"}},
		{LHS: "A", RHS: []string{"x"}},
	})
	actions := map[int]map[string]table.Action{
		0: {"x": {Kind: table.Shift, Target: 2}, "y": {Kind: table.Error}},
		1: {"$": {Kind: table.Accept}},
		2: {"$": {Kind: table.Reduce, Target: 1}},
	}
	gotos := map[int]map[string]int{0: {"A": 1}}
	return g, actions, gotos
}

func TestParse_ExplicitErrorAction(t *testing.T) {
	g, actions, gotos := tiny()
	p := New(g, table.New(actions, gotos))

	root, err := p.Parse([]string{"x"})
	require.NoError(t, err)
	assert.Equal(t, nt("A", leaf("x")), root)

	_, err = p.Parse([]string{"y"})
	perr := requireError(t, err)
	assert.Equal(t, &Error{Kind: ErrorAction, Token: "y", Pos: 0, State: 0}, perr)
}

func TestParse_UnknownProductionPanics(t *testing.T) {
	g, actions, gotos := tiny()
	actions[2]["$"] = table.Action{Kind: table.Reduce, Target: 5}
	p := New(g, table.New(actions, gotos))
	assert.Panics(t, func() { p.Parse([]string{"x"}) })
}

func TestParse_PopBelowBottomPanics(t *testing.T) {
	g, actions, gotos := tiny()
	// reduce A -> x before anything was shifted
	actions[0]["$"] = table.Action{Kind: table.Reduce, Target: 1}
	p := New(g, table.New(actions, gotos))
	assert.Panics(t, func() { p.Parse(nil) })
}

func TestParse_AcceptWithExtraNodesPanics(t *testing.T) {
	g, actions, gotos := tiny()
	actions[2]["$"] = table.Action{Kind: table.Accept}
	actions[0]["x"] = table.Action{Kind: table.Shift, Target: 3}
	actions[3] = map[string]table.Action{"x": {Kind: table.Shift, Target: 2}}
	p := New(g, table.New(actions, gotos))
	assert.Panics(t, func() { p.Parse([]string{"x", "x"}) })
}

func TestParse_GrowingEpsilonCyclePanics(t *testing.T) {
	g := grammar.New([]grammar.Production{
		{LHS: "S'", RHS: []string{"A"}},
		{LHS: "A"},
	})
	actions := map[int]map[string]table.Action{
		0: {"$": {Kind: table.Reduce, Target: 1}},
	}
	gotos := map[int]map[string]int{0: {"A": 0}}
	p := New(g, table.New(actions, gotos))
	assert.Panics(t, func() { p.Parse(nil) })
}

func TestParse_UnitCyclePanics(t *testing.T) {
	g := grammar.New([]grammar.Production{
		{LHS: "S'", RHS: []string{"A"}},
		{LHS: "A", RHS: []string{"B"}},
		{LHS: "B", RHS: []string{"A"}},
		{LHS: "B", RHS: []string{"x"}},
	})
	actions := map[int]map[string]table.Action{
		0: {"x": {Kind: table.Shift, Target: 1}},
		1: {"$": {Kind: table.Reduce, Target: 3}},
		2: {"$": {Kind: table.Reduce, Target: 1}},
		3: {"$": {Kind: table.Reduce, Target: 2}},
	}
	gotos := map[int]map[string]int{0: {"B": 2, "A": 3}}
	p := New(g, table.New(actions, gotos))
	assert.Panics(t, func() { p.Parse([]string{"x"}) })
}

func TestLoops(t *testing.T) {
	assert.False(t, loops(nil, 0, 1))
	assert.True(t, loops([]visit{{2, 3}}, 2, 3))
	assert.True(t, loops([]visit{{0, 1}}, 0, 2))
	// dropped back to the earlier visit's height in between
	assert.False(t, loops([]visit{{5, 4}, {2, 3}}, 5, 5))
	assert.False(t, loops([]visit{{9, 5}, {2, 3}, {5, 4}}, 5, 3))
}
