package edgelist

import (
	"github.com/edgekit/edgekit/pkg/errors"
	"github.com/edgekit/edgekit/pkg/graph"
)

// Build populates g from tokenized rows. Row 0 must be
// [nodeCount, edgeCount]; the next edgeCount rows must each be
// [a, b, weight] with 1-indexed endpoints, which Build converts to
// zero-indexed before calling AddEdge.
//
// Build adds exactly nodeCount nodes (identifiers 0..nodeCount-1 in order)
// and exactly edgeCount edges. It fails with a structured error when:
//
//   - the row sequence is empty (INVALID_INPUT)
//   - the header does not contain exactly two values (INVALID_HEADER)
//   - an edge row does not contain exactly three values (INVALID_EDGE_ROW)
//   - fewer edge rows are available than edgeCount requires (TRUNCATED_INPUT)
//   - an endpoint is 0 or exceeds nodeCount (UNKNOWN_NODE)
//
// None of these are recoverable; the target graph must be discarded when
// Build returns an error.
func Build(rows [][]int64, g graph.Graph) error {
	if len(rows) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "input contains no rows")
	}

	header := rows[0]
	if len(header) != 2 {
		return errors.New(errors.ErrCodeInvalidHeader,
			"header must contain exactly two values, got %d", len(header))
	}
	nodeCount, edgeCount := int(header[0]), int(header[1])

	if have := len(rows) - 1; have < edgeCount {
		return errors.New(errors.ErrCodeTruncatedInput,
			"expected %d edge rows, got %d", edgeCount, have)
	}

	for i := 0; i < nodeCount; i++ {
		g.AddNode()
	}

	for _, row := range rows[1 : 1+edgeCount] {
		if len(row) != 3 {
			return errors.New(errors.ErrCodeInvalidEdgeRow,
				"edge row must contain exactly three values, got %d", len(row))
		}
		a, b, w := row[0], row[1], row[2]
		if a == 0 || b == 0 {
			return errors.New(errors.ErrCodeUnknownNode,
				"endpoints are 1-indexed, got 0")
		}
		// Endpoints are 1-indexed in the encoding.
		if err := g.AddEdge(int(a-1), int(b-1), graph.Weight(w)); err != nil {
			return errors.Wrap(errors.ErrCodeUnknownNode, err,
				"edge %d-%d references a node beyond the declared count %d", a, b, nodeCount)
		}
	}
	return nil
}

// BuildAll replays the same rows into every target, so callers can construct
// several representations from one parse.
func BuildAll(rows [][]int64, targets ...graph.Graph) error {
	for _, g := range targets {
		if err := Build(rows, g); err != nil {
			return err
		}
	}
	return nil
}
