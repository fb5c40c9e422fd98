package graph

import (
	"errors"
	"fmt"
)

// ErrUnknownNode is returned by [Graph.AddEdge] when an endpoint refers to a
// node that was never created with AddNode. Builders guarantee endpoints by
// construction, so surfacing this error indicates either a builder bug or an
// input whose declared node count does not cover its edge rows. Callers
// treat it as fatal.
var ErrUnknownNode = errors.New("unknown node")

// Node identifies a vertex. Identifiers are dense and zero-based: a graph
// with N nodes has exactly the identifiers 0..N-1, assigned in AddNode call
// order. Nodes are never removed or reused.
type Node = int

// Weight is a non-negative integer edge label. In the adjacency-matrix
// representation the value 0 is reserved to mean "no edge", so callers that
// need a stored weight to be distinguishable from absence must use weights
// of at least 1.
type Weight int64

// Edge is an unordered pair of nodes plus a weight. A single Edge value
// represents both directions of the connection. Edges enumerated by a graph
// are canonicalized so that A <= B.
type Edge struct {
	A      Node
	B      Node
	Weight Weight
}

// Other returns the endpoint opposite to a. If a is not an endpoint of the
// edge, Other returns a itself.
func (e Edge) Other(a Node) Node {
	switch a {
	case e.A:
		return e.B
	case e.B:
		return e.A
	}
	return a
}

// Graph is the capability set shared by every representation.
//
// Implementations grow monotonically: nodes and edges are added, never
// removed. AddEdge is an upsert - repeating a pair overwrites the weight.
type Graph interface {
	// AddNode creates a node with the next sequential identifier and
	// returns it. It never fails.
	AddNode() Node

	// AddEdge records an undirected edge between a and b. Both endpoints
	// must already exist; otherwise AddEdge returns ErrUnknownNode wrapped
	// with the offending identifier. If an edge between the pair already
	// exists its weight is overwritten.
	AddEdge(a, b Node, w Weight) error

	// Edges returns the edge set with each unordered pair represented
	// exactly once, canonicalized (A <= B) and sorted ascending by (A, B).
	Edges() []Edge

	// NodeCount returns the number of nodes created so far.
	NodeCount() int
}

// WeightLookup is an optional fast path for weight queries. The
// adjacency-matrix representation implements it with a constant-time cell
// read; [EdgeWeight] uses it when available.
type WeightLookup interface {
	// EdgeWeight returns the weight of the edge between a and b, or
	// (0, false) when no such edge exists.
	EdgeWeight(a, b Node) (Weight, bool)
}

// NodeEdges returns all edges incident to a, in Edges() order.
// It is derived from Edges() and works with any representation.
func NodeEdges(g Graph, a Node) []Edge {
	var out []Edge
	for _, e := range g.Edges() {
		if e.A == a || e.B == a {
			out = append(out, e)
		}
	}
	return out
}

// EdgeWeight returns the weight of the edge between a and b, or (0, false)
// when the pair is not connected. The query is symmetric: EdgeWeight(g, a, b)
// and EdgeWeight(g, b, a) agree. Representations implementing [WeightLookup]
// answer in O(1); otherwise the edge set is scanned.
func EdgeWeight(g Graph, a, b Node) (Weight, bool) {
	if wl, ok := g.(WeightLookup); ok {
		return wl.EdgeWeight(a, b)
	}
	for _, e := range g.Edges() {
		if (e.A == a && e.B == b) || (e.A == b && e.B == a) {
			return e.Weight, true
		}
	}
	return 0, false
}

// unknownNode wraps ErrUnknownNode with the offending identifier.
func unknownNode(a Node) error {
	return fmt.Errorf("%w: %d", ErrUnknownNode, a)
}

// canonical orders the pair so that a <= b.
func canonical(a, b Node) (Node, Node) {
	if a > b {
		return b, a
	}
	return a, b
}
