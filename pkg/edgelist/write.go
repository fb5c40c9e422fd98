package edgelist

import (
	"fmt"
	"io"

	"github.com/edgekit/edgekit/pkg/graph"
)

// Write renders g's edge set to w, one edge per line as three
// space-separated integers: both endpoints converted back to 1-indexed
// display form and the weight verbatim. Emission follows Edges() order.
func Write(w io.Writer, g graph.Graph) error {
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "%d %d %d\n", e.A+1, e.B+1, e.Weight); err != nil {
			return err
		}
	}
	return nil
}
