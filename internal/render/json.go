package render

import (
	"encoding/json"
	"io"

	"github.com/chriserin/slr/internal/parser"
	"github.com/cockroachdb/errors"
)

type jsonNode struct {
	Symbol   string      `json:"symbol"`
	Terminal bool        `json:"terminal,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonError struct {
	Kind        string `json:"kind"`
	Token       string `json:"token"`
	Position    int    `json:"position"`
	State       int    `json:"state"`
	Nonterminal string `json:"nonterminal,omitempty"`
	Message     string `json:"message"`
}

type jsonResult struct {
	Accepted bool       `json:"accepted"`
	Tree     *jsonNode  `json:"tree,omitempty"`
	Error    *jsonError `json:"error,omitempty"`
}

func toJSONNode(n *parser.Node) *jsonNode {
	out := &jsonNode{Symbol: n.Symbol, Terminal: n.Terminal}
	for _, c := range n.Children {
		out.Children = append(out.Children, toJSONNode(c))
	}
	return out
}

// JSON writes the outcome as a single indented JSON document.
func JSON(w io.Writer, root *parser.Node, err error) error {
	var res jsonResult
	if err != nil {
		res.Error = &jsonError{Kind: "internal", Message: err.Error()}
		var perr *parser.Error
		if errors.As(err, &perr) {
			res.Error.Kind = perr.Kind.String()
			res.Error.Token = perr.Token
			res.Error.Position = perr.Pos
			res.Error.State = perr.State
			res.Error.Nonterminal = perr.Nonterminal
		}
	} else {
		res.Accepted = true
		res.Tree = toJSONNode(root)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
