package edgelist

import (
	"strings"
	"testing"

	"github.com/edgekit/edgekit/pkg/errors"
	"github.com/edgekit/edgekit/pkg/graph"
)

// representations under test; every build scenario runs against both.
var representations = map[string]func() graph.Graph{
	"List":   func() graph.Graph { return graph.NewAdjacencyList() },
	"Matrix": func() graph.Graph { return graph.NewAdjacencyMatrix() },
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNodes int
		wantEdges []graph.Edge
		wantCode  errors.Code
	}{
		{
			name:      "SingleEdge",
			input:     "2 1\n1 2 5",
			wantNodes: 2,
			wantEdges: []graph.Edge{{A: 0, B: 1, Weight: 5}},
		},
		{
			name:      "Path",
			input:     "3 2\n1 2 4\n2 3 7",
			wantNodes: 3,
			wantEdges: []graph.Edge{{A: 0, B: 1, Weight: 4}, {A: 1, B: 2, Weight: 7}},
		},
		{
			name:      "NodesWithoutEdges",
			input:     "4 0",
			wantNodes: 4,
		},
		{
			name:      "ExtraRowsIgnored",
			input:     "2 1\n1 2 5\n9 9 9 9",
			wantNodes: 2,
			wantEdges: []graph.Edge{{A: 0, B: 1, Weight: 5}},
		},
		{
			name:     "Empty",
			input:    "",
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "HeaderThreeValues",
			input:    "1 2 3\n1 2 5",
			wantCode: errors.ErrCodeInvalidHeader,
		},
		{
			name:     "HeaderOneValue",
			input:    "2\n1 2 5",
			wantCode: errors.ErrCodeInvalidHeader,
		},
		{
			name:     "EdgeRowTwoValues",
			input:    "2 1\n1 2",
			wantCode: errors.ErrCodeInvalidEdgeRow,
		},
		{
			name:     "EdgeRowFourValues",
			input:    "2 1\n1 2 5 8",
			wantCode: errors.ErrCodeInvalidEdgeRow,
		},
		{
			name:     "TruncatedEdgeSection",
			input:    "3 2\n1 2 4",
			wantCode: errors.ErrCodeTruncatedInput,
		},
		{
			name:     "ZeroEndpoint",
			input:    "2 1\n0 2 5",
			wantCode: errors.ErrCodeUnknownNode,
		},
		{
			name:     "EndpointBeyondNodeCount",
			input:    "2 1\n1 3 5",
			wantCode: errors.ErrCodeUnknownNode,
		},
	}

	for _, tt := range tests {
		for repName, newGraph := range representations {
			t.Run(tt.name+"/"+repName, func(t *testing.T) {
				rows, err := Parse(strings.NewReader(tt.input))
				if err != nil {
					t.Fatalf("Parse() error = %v", err)
				}

				g := newGraph()
				err = Build(rows, g)
				if tt.wantCode != "" {
					if !errors.Is(err, tt.wantCode) {
						t.Fatalf("Build() error = %v, want code %s", err, tt.wantCode)
					}
					return
				}
				if err != nil {
					t.Fatalf("Build() error = %v", err)
				}

				if g.NodeCount() != tt.wantNodes {
					t.Errorf("NodeCount() = %d, want %d", g.NodeCount(), tt.wantNodes)
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
}

func TestBuildAll_SameInputSameEdgeSet(t *testing.T) {
	rows, err := Parse(strings.NewReader("5 4\n1 2 3\n2 3 1\n3 4 9\n1 5 2"))
	if err != nil {
		t.Fatal(err)
	}

	list := graph.NewAdjacencyList()
	mat := graph.NewAdjacencyMatrix()
	if err := BuildAll(rows, list, mat); err != nil {
		t.Fatalf("BuildAll() error = %v", err)
	}

	le, me := list.Edges(), mat.Edges()
	if len(le) != len(me) {
		t.Fatalf("edge sets differ: list %v, matrix %v", le, me)
	}
	for i := range le {
		if le[i] != me[i] {
			t.Errorf("edge %d: list %v, matrix %v", i, le[i], me[i])
		}
	}
}
