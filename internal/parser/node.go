package parser

import (
	"bufio"
	"io"
	"strings"
)

// Node is a parse tree node. Leaves are shifted terminals; internal nodes
// are the left-hand sides of reduced productions, with their children in
// input order. An internal node with no children is an epsilon reduction.
type Node struct {
	Symbol   string
	Terminal bool
	Children []*Node
}

// NewLeaf creates a terminal node.
func NewLeaf(symbol string) *Node {
	return &Node{Symbol: symbol, Terminal: true}
}

// NewNonTerminal creates an internal node owning children.
func NewNonTerminal(symbol string, children []*Node) *Node {
	return &Node{Symbol: symbol, Children: children}
}

// Walk visits n and its descendants depth-first, passing each node's depth.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int), depth int) {
	fn(n, depth)
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Leaves returns the symbols of the tree's terminal nodes, left to right.
// Nodes built from epsilon reductions are internal and contribute nothing.
func (n *Node) Leaves() []string {
	var out []string
	n.Walk(func(node *Node, _ int) {
		if node.Terminal {
			out = append(out, node.Symbol)
		}
	})
	return out
}

// Render writes the tree depth-first, one symbol per line, indented by two
// spaces per level.
func (n *Node) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n.Walk(func(node *Node, depth int) {
		bw.WriteString(strings.Repeat("  ", depth))
		bw.WriteString(node.Symbol)
		bw.WriteByte('\n')
	})
	return bw.Flush()
}

func (n *Node) String() string {
	var b strings.Builder
	n.Render(&b)
	return b.String()
}
