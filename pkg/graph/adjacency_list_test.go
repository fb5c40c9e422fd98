package graph

import (
	"errors"
	"testing"
)

func TestAdjacencyList_AddNode(t *testing.T) {
	g := NewAdjacencyList()
	for want := 0; want < 5; want++ {
		if got := g.AddNode(); got != want {
			t.Fatalf("AddNode() = %d, want %d", got, want)
		}
	}
	if g.NodeCount() != 5 {
		t.Errorf("NodeCount() = %d, want 5", g.NodeCount())
	}
}

func TestAdjacencyList_AddEdge(t *testing.T) {
	tests := []struct {
		name      string
		nodes     int
		add       [][3]int64 // a, b, weight
		wantEdges []Edge
		wantErr   bool
	}{
		{
			name:      "Single",
			nodes:     2,
			add:       [][3]int64{{0, 1, 5}},
			wantEdges: []Edge{{A: 0, B: 1, Weight: 5}},
		},
		{
			name:      "ReversedPairCanonicalized",
			nodes:     3,
			add:       [][3]int64{{2, 0, 7}},
			wantEdges: []Edge{{A: 0, B: 2, Weight: 7}},
		},
		{
			name:      "UpsertOverwritesWeight",
			nodes:     2,
			add:       [][3]int64{{0, 1, 5}, {1, 0, 9}},
			wantEdges: []Edge{{A: 0, B: 1, Weight: 9}},
		},
		{
			name:      "SortedEnumeration",
			nodes:     4,
			add:       [][3]int64{{2, 3, 1}, {0, 2, 4}, {0, 1, 2}},
			wantEdges: []Edge{{A: 0, B: 1, Weight: 2}, {A: 0, B: 2, Weight: 4}, {A: 2, B: 3, Weight: 1}},
		},
		{
			name:    "UnknownEndpoint",
			nodes:   2,
			add:     [][3]int64{{0, 2, 1}},
			wantErr: true,
		},
		{
			name:    "NegativeEndpoint",
			nodes:   2,
			add:     [][3]int64{{-1, 0, 1}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewAdjacencyList()
			for i := 0; i < tt.nodes; i++ {
				g.AddNode()
			}

			var err error
			for _, e := range tt.add {
				if err = g.AddEdge(int(e[0]), int(e[1]), Weight(e[2])); err != nil {
					break
				}
			}

			if tt.wantErr {
				if err == nil {
					t.Fatal("AddEdge() error = nil, want error")
				}
				if !errors.Is(err, ErrUnknownNode) {
					t.Errorf("AddEdge() error = %v, want ErrUnknownNode", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddEdge() error = %v", err)
			}

			got := g.Edges()
			if len(got) != len(tt.wantEdges) {
				t.Fatalf("Edges() = %v, want %v", got, tt.wantEdges)
			}
			for i := range got {
				if got[i] != tt.wantEdges[i] {
					t.Errorf("Edges()[%d] = %v, want %v", i, got[i], tt.wantEdges[i])
				}
			}
		})
	}
}

func TestAdjacencyList_EdgeVisibleFromBothEndpoints(t *testing.T) {
	g := NewAdjacencyList()
	a, b := g.AddNode(), g.AddNode()
	if err := g.AddEdge(a, b, 3); err != nil {
		t.Fatal(err)
	}

	for _, n := range []Node{a, b} {
		edges := NodeEdges(g, n)
		if len(edges) != 1 {
			t.Fatalf("NodeEdges(%d) = %v, want one edge", n, edges)
		}
		if edges[0] != (Edge{A: 0, B: 1, Weight: 3}) {
			t.Errorf("NodeEdges(%d)[0] = %v", n, edges[0])
		}
	}
}

func TestAdjacencyList_EdgeWeightSymmetry(t *testing.T) {
	g := NewAdjacencyList()
	a, b := g.AddNode(), g.AddNode()
	g.AddNode()
	if err := g.AddEdge(a, b, 42); err != nil {
		t.Fatal(err)
	}

	for _, pair := range [][2]Node{{a, b}, {b, a}} {
		w, ok := EdgeWeight(g, pair[0], pair[1])
		if !ok || w != 42 {
			t.Errorf("EdgeWeight(%d, %d) = (%d, %v), want (42, true)", pair[0], pair[1], w, ok)
		}
	}
	if _, ok := EdgeWeight(g, a, 2); ok {
		t.Error("EdgeWeight(0, 2) reported an edge that was never added")
	}
}
