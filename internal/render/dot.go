package render

import (
	"fmt"
	"io"

	"github.com/chriserin/slr/internal/parser"
	"github.com/emicklei/dot"
)

// DOT writes an accepted tree as a Graphviz digraph, terminals boxed.
// Rejected inputs have no tree and get the text diagnostic.
func DOT(w io.Writer, root *parser.Node, err error) error {
	if err != nil {
		return Text(w, nil, err)
	}

	g := dot.NewGraph(dot.Directed)
	next := 0
	var add func(n *parser.Node) dot.Node
	add = func(n *parser.Node) dot.Node {
		node := g.Node(fmt.Sprintf("n%d", next)).Label(n.Symbol)
		next++
		if n.Terminal {
			node.Attr("shape", "box")
		}
		for _, c := range n.Children {
			g.Edge(node, add(c))
		}
		return node
	}
	add(root)

	_, werr := io.WriteString(w, g.String())
	return werr
}
