package graph_test

import (
	"fmt"

	"github.com/edgekit/edgekit/pkg/graph"
)

func ExampleAdjacencyList() {
	g := graph.NewAdjacencyList()
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	_ = g.AddEdge(a, b, 4)
	_ = g.AddEdge(b, c, 7)

	fmt.Println("Nodes:", g.NodeCount())
	for _, e := range g.Edges() {
		fmt.Printf("%d -- %d (%d)\n", e.A, e.B, e.Weight)
	}
	// Output:
	// Nodes: 3
	// 0 -- 1 (4)
	// 1 -- 2 (7)
}

func ExampleAdjacencyMatrix() {
	g := graph.NewAdjacencyMatrix()
	a := g.AddNode()
	b := g.AddNode()
	_ = g.AddEdge(a, b, 5)

	// Weight queries are symmetric and constant-time.
	w, ok := g.EdgeWeight(b, a)
	fmt.Println(w, ok)

	// Repeating a pair overwrites the weight.
	_ = g.AddEdge(a, b, 9)
	w, _ = g.EdgeWeight(a, b)
	fmt.Println(w)
	// Output:
	// 5 true
	// 9
}

func ExampleNodeEdges() {
	g := graph.NewAdjacencyList()
	hub := g.AddNode()
	x := g.AddNode()
	y := g.AddNode()
	_ = g.AddEdge(hub, x, 1)
	_ = g.AddEdge(hub, y, 2)
	_ = g.AddEdge(x, y, 3)

	for _, e := range graph.NodeEdges(g, hub) {
		fmt.Printf("%d -- %d\n", e.A, e.B)
	}
	// Output:
	// 0 -- 1
	// 0 -- 2
}
