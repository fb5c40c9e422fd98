// Package graph provides the core undirected weighted graph abstraction and
// its two concrete representations.
//
// A graph is built incrementally: nodes are created with [Graph.AddNode] and
// receive dense, zero-based identifiers in call order; edges are recorded
// with [Graph.AddEdge] between existing nodes. Edges are undirected - a
// single entry represents both directions - and adding an edge between an
// already-connected pair overwrites the stored weight.
//
// # Representations
//
// Two implementations share the [Graph] contract:
//
//   - [AdjacencyList]: per-node incidence slices. Cheap node creation,
//     edge insertion proportional to node degree. Suited to sparse graphs.
//   - [AdjacencyMatrix]: a flat N² weight array. Constant-time weight
//     lookup, but each AddNode reallocates and copies the whole matrix.
//     Suited to dense graphs. Weight 0 doubles as the "no edge" sentinel.
//
// Given the same sequence of AddNode/AddEdge calls, both representations
// yield identical edge sets:
//
//	list := graph.NewAdjacencyList()
//	mat := graph.NewAdjacencyMatrix()
//	for _, g := range []graph.Graph{list, mat} {
//	    a, b := g.AddNode(), g.AddNode()
//	    _ = g.AddEdge(a, b, 5)
//	}
//	// list.Edges() and mat.Edges() both contain {A: 0, B: 1, Weight: 5}
//
// # Derived queries
//
// [NodeEdges] and [EdgeWeight] are implemented once in terms of Edges() and
// work with any representation. EdgeWeight takes the O(1) fast path when the
// representation implements [WeightLookup], as the matrix does.
//
// # Concurrency
//
// Graphs are not safe for concurrent mutation. Each graph is intended to be
// built and consumed by a single control flow.
package graph
