package cfg

func (b *Builder) removeEdge(e Edge) {
	without := func(es []Edge) []Edge {
		res := es[:0]
		for _, o := range es {
			if o != e {
				res = append(res, o)
			}
		}
		return res
	}
	b.cfg.succs[e.From] = without(b.cfg.succs[e.From])
	b.cfg.preds[e.To] = without(b.cfg.preds[e.To])
}

// Compress removes the skip nodes that only forward control flow to a
// single successor, redirecting their incoming edges. The entry and exit
// nodes are kept, as are skip nodes looping onto themselves. The remaining
// nodes are renumbered.
func (b *Builder) Compress() {
	cfg := b.cfg
	kept := make([]Node, 0, len(cfg.nodes))

	for _, node := range cfg.nodes {
		succs := cfg.succs[node]
		if _, isSkip := node.(*Skip); !isSkip ||
			node == cfg.entry ||
			node == cfg.exit ||
			len(succs) != 1 ||
			succs[0].Kind != Seq ||
			succs[0].To == node {
			kept = append(kept, node)
			continue
		}

		next := succs[0].To
		b.removeEdge(succs[0])
		for _, in := range append([]Edge(nil), cfg.preds[node]...) {
			b.removeEdge(in)
			b.Edge(in.From, next, in.Kind)
		}
		delete(cfg.succs, node)
		delete(cfg.preds, node)
	}

	for i, node := range kept {
		node.baseNode().index = i
	}
	cfg.nodes = kept
}

// Sort renumbers the nodes in reverse postorder from the entry node. The
// depth-first traversal takes the True successor of a branch last, so that
// it is numbered before the False successor, and on acyclic paths indices
// follow the order of the source. Nodes unreachable from the entry keep
// their relative order after the reachable ones.
func (b *Builder) Sort() {
	cfg := b.cfg
	visited := map[Node]bool{}
	if cfg.exit != nil {
		visited[cfg.exit] = true
	}

	var post []Node
	var visit func(Node)
	visit = func(n Node) {
		visited[n] = true
		succs := cfg.succs[n]
		for i := len(succs) - 1; i >= 0; i-- {
			if to := succs[i].To; !visited[to] {
				visit(to)
			}
		}
		post = append(post, n)
	}
	visit(cfg.entry)

	order := make([]Node, 0, len(cfg.nodes))
	for i := len(post) - 1; i >= 0; i-- {
		order = append(order, post[i])
	}
	for _, n := range cfg.nodes {
		if !visited[n] {
			order = append(order, n)
		}
	}

	for i, node := range order {
		node.baseNode().index = i
	}
	cfg.nodes = order
}
