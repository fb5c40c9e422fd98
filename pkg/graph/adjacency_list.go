package graph

import "slices"

// AdjacencyList stores, for each node, the list of edges touching it.
// Every edge is recorded in both endpoints' incidence slices, so it is
// discoverable from either side; enumeration emits it once.
//
// The zero value is an empty, ready-to-use graph. AdjacencyList is not safe
// for concurrent use.
type AdjacencyList struct {
	incidence [][]Edge
}

// NewAdjacencyList creates an empty adjacency-list graph.
func NewAdjacencyList() *AdjacencyList {
	return &AdjacencyList{}
}

// AddNode creates a node with the next sequential identifier.
//
// Complexity: O(1) amortized.
func (g *AdjacencyList) AddNode() Node {
	g.incidence = append(g.incidence, nil)
	return len(g.incidence) - 1
}

// AddEdge records an undirected edge between a and b with the given weight.
// The edge is inserted into both endpoints' incidence records; if the pair
// is already connected the stored weight is overwritten in both records.
//
// Complexity: O(degree) to find or insert.
func (g *AdjacencyList) AddEdge(a, b Node, w Weight) error {
	if a < 0 || a >= len(g.incidence) {
		return unknownNode(a)
	}
	if b < 0 || b >= len(g.incidence) {
		return unknownNode(b)
	}

	lo, hi := canonical(a, b)
	edge := Edge{A: lo, B: hi, Weight: w}
	g.upsert(a, edge)
	if b != a {
		g.upsert(b, edge)
	}
	return nil
}

// upsert updates the existing entry for edge's pair in node's incidence
// slice, or appends it.
func (g *AdjacencyList) upsert(node Node, edge Edge) {
	for i, e := range g.incidence[node] {
		if e.A == edge.A && e.B == edge.B {
			g.incidence[node][i].Weight = edge.Weight
			return
		}
	}
	g.incidence[node] = append(g.incidence[node], edge)
}

// Edges returns the edge set sorted ascending by (A, B), each unordered pair
// exactly once. Since edges are stored canonicalized (A <= B), keeping only
// the entries anchored at A yields every edge exactly once.
//
// Complexity: O(V + E log E).
func (g *AdjacencyList) Edges() []Edge {
	var out []Edge
	for node, edges := range g.incidence {
		for _, e := range edges {
			if e.A == node {
				out = append(out, e)
			}
		}
	}
	slices.SortFunc(out, func(x, y Edge) int {
		if x.A != y.A {
			return x.A - y.A
		}
		return x.B - y.B
	})
	return out
}

// NodeCount returns the number of nodes created so far.
func (g *AdjacencyList) NodeCount() int {
	return len(g.incidence)
}

var _ Graph = (*AdjacencyList)(nil)
