package graph

/*
	This package exposes utilities for working with graph structures.

	The caller only provides a function describing the edge relation; the
	analysis engine uses it on control-flow graphs to find the nodes at
	which widening must be applied.
*/

type edgesOf[T any] func(node T) []T

type Graph[T comparable] struct {
	edgesOf     edgesOf[T]
	cachedEdges map[T][]T
}

func (G Graph[T]) Edges(node T) []T {
	if cached, found := G.cachedEdges[node]; found {
		return cached
	}

	es := G.edgesOf(node)
	G.cachedEdges[node] = es
	return es
}

func Of[T comparable](edgesOf edgesOf[T]) Graph[T] {
	return Graph[T]{
		edgesOf,
		make(map[T][]T),
	}
}
