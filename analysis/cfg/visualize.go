package cfg

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/cs-au-dk/absdom/utils/dot"
)

var edgeColors = map[EdgeKind]string{
	Seq:   "black",
	True:  "darkgreen",
	False: "firebrick",
}

// Visualize creates a DOT graph of the CFG. When annotate is not nil, its
// result for a node is appended to the node label, e.g. to show the
// analysis result at that node.
func (cfg *Cfg) Visualize(annotate func(Node) string) *dot.DotGraph {
	G := &dot.DotGraph{
		Title:   cfg.name,
		Options: map[string]string{"rankdir": "TB"},
	}

	nodeToDotNode := make(map[Node]*dot.DotNode, len(cfg.nodes))
	for _, node := range cfg.nodes {
		label := Describe(node)
		if annotate != nil {
			if ann := annotate(node); ann != "" {
				label += "\n" + ann
			}
		}

		dnode := &dot.DotNode{
			ID:    strconv.Itoa(node.Index()),
			Attrs: dot.DotAttrs{"label": label},
		}
		if node == cfg.entry || node == cfg.exit {
			dnode.Attrs["fillcolor"] = "#cce6ff"
		}
		G.Nodes = append(G.Nodes, dnode)
		nodeToDotNode[node] = dnode
	}

	for _, node := range cfg.nodes {
		for _, e := range cfg.succs[node] {
			attrs := dot.DotAttrs{"color": edgeColors[e.Kind]}
			if e.Kind != Seq {
				attrs["label"] = e.Kind.String()
			}
			G.Edges = append(G.Edges, &dot.DotEdge{
				From:  nodeToDotNode[e.From],
				To:    nodeToDotNode[e.To],
				Attrs: attrs,
			})
		}
	}

	return G
}

// Render writes the CFG visualization to outfname in the given format and
// returns the path of the written file.
func (cfg *Cfg) Render(outfname, format string, annotate func(Node) string) (string, error) {
	var buf bytes.Buffer
	if err := cfg.Visualize(annotate).WriteDot(&buf); err != nil {
		return "", fmt.Errorf("writing DOT for %s: %w", cfg.name, err)
	}
	return dot.DotToImage(outfname, format, buf.Bytes())
}
