package cfg

import (
	"strings"

	"github.com/cs-au-dk/absdom/analysis/expr"
	"github.com/cs-au-dk/absdom/utils/graph"
)

// Cfg is the control-flow graph of a single function.
type Cfg struct {
	name        string
	nodes       []Node
	entry, exit Node
	succs       map[Node][]Edge
	preds       map[Node][]Edge
}

// Name is the name of the function of the CFG.
func (cfg *Cfg) Name() string {
	return cfg.name
}

func (cfg *Cfg) Entry() Node {
	return cfg.entry
}

func (cfg *Cfg) Exit() Node {
	return cfg.exit
}

// Nodes lists the nodes ordered by index.
func (cfg *Cfg) Nodes() []Node {
	return cfg.nodes
}

func (cfg *Cfg) Size() int {
	return len(cfg.nodes)
}

// Node retrieves the node with the given index.
func (cfg *Cfg) Node(index int) Node {
	return cfg.nodes[index]
}

// ForEach executes the given procedure for each node in index order.
func (cfg *Cfg) ForEach(do func(Node)) {
	for _, n := range cfg.nodes {
		do(n)
	}
}

func (cfg *Cfg) Successors(n Node) []Edge {
	return cfg.succs[n]
}

func (cfg *Cfg) Predecessors(n Node) []Edge {
	return cfg.preds[n]
}

// Graph exposes the successor relation for graph algorithms.
func (cfg *Cfg) Graph() graph.Graph[Node] {
	return graph.Of(func(n Node) []Node {
		edges := cfg.succs[n]
		res := make([]Node, len(edges))
		for i, e := range edges {
			res[i] = e.To
		}
		return res
	})
}

// String lists every node with its outgoing edges.
func (cfg *Cfg) String() string {
	var sb strings.Builder
	sb.WriteString(cfg.name + ":\n")
	for _, n := range cfg.nodes {
		sb.WriteString(Describe(n))
		for _, e := range cfg.succs[n] {
			sb.WriteString("\n\t" + e.String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Builder constructs a CFG. The entry node is created with the builder,
// and the exit node on first request.
type Builder struct {
	cfg *Cfg
}

func NewBuilder(name string) *Builder {
	b := &Builder{&Cfg{
		name:  name,
		succs: make(map[Node][]Edge),
		preds: make(map[Node][]Edge),
	}}
	b.cfg.entry = b.Skip(expr.CodeLocation{}, "entry")
	return b
}

func (b *Builder) add(n Node) {
	n.baseNode().index = len(b.cfg.nodes)
	b.cfg.nodes = append(b.cfg.nodes, n)
}

func (b *Builder) Entry() Node {
	return b.cfg.entry
}

func (b *Builder) Exit() Node {
	if b.cfg.exit == nil {
		b.cfg.exit = &Skip{Label: "exit"}
	}
	return b.cfg.exit
}

func (b *Builder) Assign(loc expr.CodeLocation, target expr.Identifier, value expr.Expr) *Assign {
	n := &Assign{BaseNode{loc: loc}, target, value}
	b.add(n)
	return n
}

func (b *Builder) Eval(loc expr.CodeLocation, e expr.Expr) *Eval {
	n := &Eval{BaseNode{loc: loc}, e}
	b.add(n)
	return n
}

func (b *Builder) Skip(loc expr.CodeLocation, label string) *Skip {
	n := &Skip{BaseNode{loc: loc}, label}
	b.add(n)
	return n
}

// Edge connects two nodes. Duplicate edges are ignored.
func (b *Builder) Edge(from, to Node, kind EdgeKind) {
	e := Edge{from, to, kind}
	for _, o := range b.cfg.succs[from] {
		if o == e {
			return
		}
	}
	b.cfg.succs[from] = append(b.cfg.succs[from], e)
	b.cfg.preds[to] = append(b.cfg.preds[to], e)
}

func (b *Builder) Seq(from, to Node) {
	b.Edge(from, to, Seq)
}

// Branch connects a condition to the nodes that follow when it holds and
// when it does not.
func (b *Builder) Branch(cond, then, els Node) {
	b.Edge(cond, then, True)
	b.Edge(cond, els, False)
}

// Chain connects the nodes in sequence and returns the last one.
func (b *Builder) Chain(nodes ...Node) Node {
	for i := 1; i < len(nodes); i++ {
		b.Seq(nodes[i-1], nodes[i])
	}
	return nodes[len(nodes)-1]
}

// Build finishes the CFG. The nodes are numbered in creation order, with
// the exit node last.
func (b *Builder) Build() *Cfg {
	b.add(b.Exit())
	cfg := b.cfg
	b.cfg = nil
	return cfg
}
