package graphio

import (
	"github.com/edgekit/edgekit/pkg/edgelist"
	"github.com/edgekit/edgekit/pkg/errors"
	"github.com/edgekit/edgekit/pkg/graph"
)

// Edge is one undirected edge in display form: endpoints are 1-indexed, as
// in the text encoding.
type Edge struct {
	A      int   `json:"a" bson:"a"`
	B      int   `json:"b" bson:"b"`
	Weight int64 `json:"weight" bson:"weight"`
}

// Document is the canonical serialization format for a graph: the node count
// plus the edge set. Node identifiers are dense, so the count alone
// reconstructs the node set.
type Document struct {
	Nodes int    `json:"nodes" bson:"nodes"`
	Edges []Edge `json:"edges" bson:"edges"`
}

// FromGraph converts any graph representation to its serialization format.
// Edges appear in the graph's canonical (A, B)-sorted order, converted to
// 1-indexed display form.
func FromGraph(g graph.Graph) Document {
	edges := g.Edges()
	doc := Document{
		Nodes: g.NodeCount(),
		Edges: make([]Edge, len(edges)),
	}
	for i, e := range edges {
		doc.Edges[i] = Edge{A: e.A + 1, B: e.B + 1, Weight: int64(e.Weight)}
	}
	return doc
}

// Populate drives g from a Document, reusing the builder so documents are
// validated exactly like text input (endpoint range checks included).
// Weights must be positive: the matrix representation reserves zero for
// "no edge", so a weight-0 edge would survive in one representation and
// vanish from the other.
func Populate(doc Document, g graph.Graph) error {
	rows := make([][]int64, 0, len(doc.Edges)+1)
	rows = append(rows, []int64{int64(doc.Nodes), int64(len(doc.Edges))})
	for _, e := range doc.Edges {
		if e.A < 1 || e.B < 1 || e.Weight < 1 {
			return errors.New(errors.ErrCodeInvalidInput,
				"edge %d-%d (weight %d) is out of range", e.A, e.B, e.Weight)
		}
		rows = append(rows, []int64{int64(e.A), int64(e.B), e.Weight})
	}
	return edgelist.Build(rows, g)
}

// ToList reconstructs an adjacency-list graph from a Document.
func ToList(doc Document) (*graph.AdjacencyList, error) {
	g := graph.NewAdjacencyList()
	if err := Populate(doc, g); err != nil {
		return nil, err
	}
	return g, nil
}

// ToMatrix reconstructs an adjacency-matrix graph from a Document.
func ToMatrix(doc Document) (*graph.AdjacencyMatrix, error) {
	g := graph.NewAdjacencyMatrix()
	if err := Populate(doc, g); err != nil {
		return nil, err
	}
	return g, nil
}
