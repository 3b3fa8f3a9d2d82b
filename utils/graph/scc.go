package graph

// A DAG decomposition of a graph based on strongly connected components.
// The nodes in component i are guaranteed to only have edges to nodes in
// components with index j <= i.
type SCCDecomposition[T comparable] struct {
	Components [][]T
	comp       map[T]int
	Original   Graph[T]
}

// Returns the index of the component the node is a part of, or -1 if the
// node was not reachable from the start nodes of the decomposition.
func (scc SCCDecomposition[T]) ComponentOf(node T) int {
	if comp, hasComp := scc.comp[node]; hasComp {
		return comp
	}
	return -1
}

// IsCyclic reports whether the node lies on a cycle.
func (scc SCCDecomposition[T]) IsCyclic(node T) bool {
	c := scc.ComponentOf(node)
	if c == -1 {
		return false
	}
	if len(scc.Components[c]) > 1 {
		return true
	}
	for _, e := range scc.Original.Edges(node) {
		if e == node {
			return true
		}
	}
	return false
}

// Compute the strongly connected components of the subgraph reachable from the
// provided start nodes.
func (G Graph[T]) SCC(startNodes []T) SCCDecomposition[T] {
	// Source:
	// https://github.com/kth-competitive-programming/kactl/blob/main/content/graph/SCC.h

	val, comp := make(map[T]int), make(map[T]int)
	time := 0
	var z, cont []T
	var components [][]T

	var rec func(T)
	rec = func(node T) {
		time++
		low := time
		val[node] = low
		stackH := len(z)
		z = append(z, node)

		for _, e := range G.Edges(node) {
			if _, hasComp := comp[e]; !hasComp {
				if _, visited := val[e]; !visited {
					rec(e)
				}

				if val[e] < low {
					low = val[e]
				}
			}
		}

		if low == val[node] {
			for len(z) > stackH {
				x := z[len(z)-1]
				z = z[:len(z)-1]
				comp[x] = len(components)
				cont = append(cont, x)
			}

			components = append(components, cont)
			cont = nil
		}

		val[node] = low
	}

	for _, node := range startNodes {
		if _, hasComp := comp[node]; !hasComp {
			rec(node)
		}
	}

	return SCCDecomposition[T]{
		Components: components,
		comp:       comp,
		Original:   G,
	}
}

// LoopHeads returns the nodes through which control enters a cycle: cyclic
// nodes that are start nodes or have a predecessor outside their component.
// Widening at these nodes is enough to make every cycle converge.
func (G Graph[T]) LoopHeads(startNodes []T) map[T]bool {
	scc := G.SCC(startNodes)
	heads := make(map[T]bool)

	for _, start := range startNodes {
		if scc.IsCyclic(start) {
			heads[start] = true
		}
	}

	for _, node := range G.Reachable(startNodes...) {
		for _, succ := range G.Edges(node) {
			if scc.IsCyclic(succ) && scc.ComponentOf(node) != scc.ComponentOf(succ) {
				heads[succ] = true
			}
		}
	}

	return heads
}
