package graph

// AdjacencyMatrix stores weights in a single flat array of size N²,
// logically a square matrix where cell (row, col) holds the weight of the
// edge between row and col. The matrix is symmetric by construction: AddEdge
// writes both (a, b) and (b, a). A stored weight of 0 means "no edge", which
// doubles as the edge-existence test.
//
// The zero value is an empty, ready-to-use graph. AdjacencyMatrix is not
// safe for concurrent use.
type AdjacencyMatrix struct {
	n     int
	cells []Weight
}

// NewAdjacencyMatrix creates an empty adjacency-matrix graph.
func NewAdjacencyMatrix() *AdjacencyMatrix {
	return &AdjacencyMatrix{}
}

// AddNode grows the matrix from N×N to (N+1)×(N+1): a new zero-filled array
// is allocated and each old row is copied into the prefix of the
// corresponding new row. The new row and column stay zero. This is the only
// way nodes are added; there is no separate capacity reservation.
//
// Complexity: O(N²) per call due to the full reallocation and copy.
func (g *AdjacencyMatrix) AddNode() Node {
	node := g.n
	size := g.n + 1

	cells := make([]Weight, size*size)
	for row := 0; row < g.n; row++ {
		copy(cells[row*size:row*size+g.n], g.cells[row*g.n:(row+1)*g.n])
	}

	g.cells = cells
	g.n = size
	return node
}

// AddEdge records an undirected edge by writing the weight into both the
// (a, b) and (b, a) cells. Writing weight 0 is indistinguishable from the
// edge being absent.
//
// Complexity: O(1).
func (g *AdjacencyMatrix) AddEdge(a, b Node, w Weight) error {
	if a < 0 || a >= g.n {
		return unknownNode(a)
	}
	if b < 0 || b >= g.n {
		return unknownNode(b)
	}
	g.cells[a*g.n+b] = w
	g.cells[b*g.n+a] = w
	return nil
}

// EdgeWeight reads the (a, b) cell directly. A stored 0 reports the edge as
// absent. Out-of-range nodes are reported as absent rather than an error,
// matching the derived [EdgeWeight] helper's behavior on unknown pairs.
//
// Complexity: O(1).
func (g *AdjacencyMatrix) EdgeWeight(a, b Node) (Weight, bool) {
	if a < 0 || a >= g.n || b < 0 || b >= g.n {
		return 0, false
	}
	w := g.cells[a*g.n+b]
	return w, w != 0
}

// Edges scans the full array once, yielding each unordered pair exactly
// once: the strictly below-diagonal duplicate of every symmetric entry is
// suppressed by emitting a cell only when its column index is >= its row
// index. The result is sorted ascending by (A, B) by construction.
//
// Complexity: O(N²).
func (g *AdjacencyMatrix) Edges() []Edge {
	var out []Edge
	for i, w := range g.cells {
		if w == 0 {
			continue
		}
		row, col := i/g.n, i%g.n
		if col < row {
			continue
		}
		out = append(out, Edge{A: row, B: col, Weight: w})
	}
	return out
}

// NodeCount returns the number of nodes created so far.
func (g *AdjacencyMatrix) NodeCount() int {
	return g.n
}

var (
	_ Graph        = (*AdjacencyMatrix)(nil)
	_ WeightLookup = (*AdjacencyMatrix)(nil)
)
