package graph

import (
	"errors"
	"testing"
)

func TestAdjacencyMatrix_AddNode(t *testing.T) {
	g := NewAdjacencyMatrix()
	for want := 0; want < 4; want++ {
		if got := g.AddNode(); got != want {
			t.Fatalf("AddNode() = %d, want %d", got, want)
		}
		if g.NodeCount() != want+1 {
			t.Fatalf("NodeCount() = %d, want %d", g.NodeCount(), want+1)
		}
	}
}

func TestAdjacencyMatrix_ResizePreservesWeights(t *testing.T) {
	g := NewAdjacencyMatrix()
	a, b := g.AddNode(), g.AddNode()
	if err := g.AddEdge(a, b, 5); err != nil {
		t.Fatal(err)
	}

	// Growing the matrix must copy every existing row into the new array.
	c := g.AddNode()
	d := g.AddNode()

	if w, ok := g.EdgeWeight(a, b); !ok || w != 5 {
		t.Errorf("EdgeWeight(%d, %d) after resize = (%d, %v), want (5, true)", a, b, w, ok)
	}
	if _, ok := g.EdgeWeight(c, d); ok {
		t.Error("new rows/columns must stay zero after resize")
	}

	if err := g.AddEdge(c, d, 7); err != nil {
		t.Fatal(err)
	}
	want := []Edge{{A: 0, B: 1, Weight: 5}, {A: 2, B: 3, Weight: 7}}
	got := g.Edges()
	if len(got) != len(want) {
		t.Fatalf("Edges() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Edges()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAdjacencyMatrix_Symmetry(t *testing.T) {
	g := NewAdjacencyMatrix()
	a, b := g.AddNode(), g.AddNode()
	if err := g.AddEdge(b, a, 9); err != nil {
		t.Fatal(err)
	}

	for _, pair := range [][2]Node{{a, b}, {b, a}} {
		if w, ok := g.EdgeWeight(pair[0], pair[1]); !ok || w != 9 {
			t.Errorf("EdgeWeight(%d, %d) = (%d, %v), want (9, true)", pair[0], pair[1], w, ok)
		}
	}

	// Exactly one canonical entry, not two.
	edges := g.Edges()
	if len(edges) != 1 || edges[0] != (Edge{A: 0, B: 1, Weight: 9}) {
		t.Errorf("Edges() = %v, want single canonical edge (0, 1, 9)", edges)
	}
}

func TestAdjacencyMatrix_Upsert(t *testing.T) {
	g := NewAdjacencyMatrix()
	a, b := g.AddNode(), g.AddNode()
	if err := g.AddEdge(a, b, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(a, b, 2); err != nil {
		t.Fatal(err)
	}
	edges := g.Edges()
	if len(edges) != 1 || edges[0].Weight != 2 {
		t.Errorf("Edges() after upsert = %v, want one edge with weight 2", edges)
	}
}

func TestAdjacencyMatrix_ZeroMeansAbsent(t *testing.T) {
	g := NewAdjacencyMatrix()
	a, b := g.AddNode(), g.AddNode()

	if _, ok := g.EdgeWeight(a, b); ok {
		t.Error("EdgeWeight reported an edge before any AddEdge call")
	}

	// Writing weight 0 is indistinguishable from absence by design.
	if err := g.AddEdge(a, b, 0); err != nil {
		t.Fatal(err)
	}
	if _, ok := g.EdgeWeight(a, b); ok {
		t.Error("EdgeWeight must report a zero-weight cell as absent")
	}
	if edges := g.Edges(); len(edges) != 0 {
		t.Errorf("Edges() = %v, want empty", edges)
	}
}

func TestAdjacencyMatrix_AddEdgeUnknownNode(t *testing.T) {
	g := NewAdjacencyMatrix()
	g.AddNode()

	tests := []struct {
		name string
		a, b Node
	}{
		{"BOutOfRange", 0, 1},
		{"AOutOfRange", 5, 0},
		{"Negative", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.AddEdge(tt.a, tt.b, 1)
			if !errors.Is(err, ErrUnknownNode) {
				t.Errorf("AddEdge(%d, %d) error = %v, want ErrUnknownNode", tt.a, tt.b, err)
			}
		})
	}
}

func TestAdjacencyMatrix_SelfLoopEmittedOnce(t *testing.T) {
	g := NewAdjacencyMatrix()
	a := g.AddNode()
	if err := g.AddEdge(a, a, 4); err != nil {
		t.Fatal(err)
	}
	edges := g.Edges()
	if len(edges) != 1 || edges[0] != (Edge{A: 0, B: 0, Weight: 4}) {
		t.Errorf("Edges() = %v, want single diagonal entry", edges)
	}
}
