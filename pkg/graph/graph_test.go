package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edgekit/edgekit/pkg/graph"
)

// build replays the same construction sequence against any representation.
func build(g graph.Graph, nodes int, edges [][3]int64) error {
	for i := 0; i < nodes; i++ {
		g.AddNode()
	}
	for _, e := range edges {
		if err := g.AddEdge(int(e[0]), int(e[1]), graph.Weight(e[2])); err != nil {
			return err
		}
	}
	return nil
}

func TestRepresentationEquivalence(t *testing.T) {
	tests := []struct {
		name  string
		nodes int
		edges [][3]int64
	}{
		{"Empty", 0, nil},
		{"NodesOnly", 4, nil},
		{"SingleEdge", 2, [][3]int64{{0, 1, 5}}},
		{"Path", 3, [][3]int64{{0, 1, 4}, {1, 2, 7}}},
		{"Triangle", 3, [][3]int64{{0, 1, 1}, {1, 2, 2}, {2, 0, 3}}},
		{"UpsertAndReverse", 3, [][3]int64{{0, 1, 1}, {1, 0, 8}, {2, 1, 6}}},
		{"Dense", 5, [][3]int64{
			{0, 1, 1}, {0, 2, 2}, {0, 3, 3}, {0, 4, 4},
			{1, 2, 5}, {1, 3, 6}, {2, 4, 7}, {3, 4, 8},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := graph.NewAdjacencyList()
			mat := graph.NewAdjacencyMatrix()
			require.NoError(t, build(list, tt.nodes, tt.edges))
			require.NoError(t, build(mat, tt.nodes, tt.edges))

			require.Equal(t, list.NodeCount(), mat.NodeCount())
			require.Equal(t, list.Edges(), mat.Edges(),
				"both representations must yield the same canonical edge set")

			for a := 0; a < tt.nodes; a++ {
				require.Equal(t, graph.NodeEdges(list, a), graph.NodeEdges(mat, a),
					"incident edges of node %d", a)
				for b := 0; b < tt.nodes; b++ {
					lw, lok := graph.EdgeWeight(list, a, b)
					mw, mok := graph.EdgeWeight(mat, a, b)
					require.Equal(t, lok, mok, "edge existence (%d, %d)", a, b)
					require.Equal(t, lw, mw, "edge weight (%d, %d)", a, b)
				}
			}
		})
	}
}

func TestEdgeWeightFastPath(t *testing.T) {
	mat := graph.NewAdjacencyMatrix()
	a, b := mat.AddNode(), mat.AddNode()
	require.NoError(t, mat.AddEdge(a, b, 11))

	// The package-level helper must route through the matrix's O(1) lookup.
	var g graph.Graph = mat
	_, ok := g.(graph.WeightLookup)
	require.True(t, ok, "AdjacencyMatrix must implement WeightLookup")

	w, ok := graph.EdgeWeight(g, b, a)
	require.True(t, ok)
	require.Equal(t, graph.Weight(11), w)
}

func TestEdgeOther(t *testing.T) {
	e := graph.Edge{A: 1, B: 3, Weight: 2}
	require.Equal(t, 3, e.Other(1))
	require.Equal(t, 1, e.Other(3))
	require.Equal(t, 7, e.Other(7))
}
