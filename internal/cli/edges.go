package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/edgekit/edgekit/pkg/edgelist"
	apperrors "github.com/edgekit/edgekit/pkg/errors"
	"github.com/edgekit/edgekit/pkg/graph"
	"github.com/edgekit/edgekit/pkg/observability"
)

const (
	reprBoth   = "both"
	reprList   = "list"
	reprMatrix = "matrix"
)

// edgesOpts holds the command-line flags for the edges command.
type edgesOpts struct {
	repr  string // representation(s) to print: both, list, matrix
	plain bool   // suppress headings and styling, print bare edge lines
}

// newEdgesCmd creates the edges command. It parses an edge-list file into
// both graph representations and prints each one's edge set, one edge per
// line as "a b weight" with 1-indexed endpoints.
func newEdgesCmd() *cobra.Command {
	var opts edgesOpts

	cmd := &cobra.Command{
		Use:   "edges [file]",
		Short: "Parse an edge-list file and print the edge set",
		Long: `Parse a plain-text edge list into an adjacency matrix and an adjacency
list and print each representation's edge set. The input starts with a
"nodeCount edgeCount" header followed by one "a b weight" row per edge,
all endpoints 1-indexed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRepr(opts.repr); err != nil {
				return err
			}
			return runEdges(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.repr, "repr", "r", reprBoth, "representation(s) to print: both, list, matrix")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print bare edge lines without headings")

	return cmd
}

// validateRepr checks that the representation selector is known.
func validateRepr(s string) error {
	switch s {
	case reprBoth, reprList, reprMatrix:
		return nil
	}
	return fmt.Errorf("invalid representation: %s (must be 'both', 'list', or 'matrix')", s)
}

// runEdges parses the input file, builds the requested representations, and
// prints their edge sets in matrix-then-list order.
func runEdges(ctx context.Context, input string, opts *edgesOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Parsing %s", input)

	start := time.Now()
	observability.Build().OnBuildStart(ctx, input)

	rows, err := edgelist.ParseFile(input)
	if err != nil {
		observability.Build().OnBuildComplete(ctx, input, 0, 0, time.Since(start), err)
		return err
	}

	mat := graph.NewAdjacencyMatrix()
	list := graph.NewAdjacencyList()
	targets := buildTargets(opts.repr, mat, list)

	p := newProgress(logger)
	if err := edgelist.BuildAll(rows, targets...); err != nil {
		observability.Build().OnBuildComplete(ctx, input, 0, 0, time.Since(start), err)
		return err
	}
	first := targets[0]
	observability.Build().OnBuildComplete(ctx, input,
		first.NodeCount(), len(first.Edges()), time.Since(start), nil)
	p.done(fmt.Sprintf("Built %d representation(s)", len(targets)))

	if opts.repr == reprBoth {
		if err := verifyAgreement(mat, list); err != nil {
			return err
		}
	}

	if !opts.plain {
		printInfo("Parsed %s", input)
	}
	if opts.repr == reprBoth || opts.repr == reprMatrix {
		if err := printEdgeSet("Adjacency matrix", mat, opts.plain); err != nil {
			return err
		}
	}
	if opts.repr == reprBoth || opts.repr == reprList {
		if !opts.plain && opts.repr == reprBoth {
			printNewline()
		}
		if err := printEdgeSet("Adjacency list", list, opts.plain); err != nil {
			return err
		}
	}

	if !opts.plain {
		printStats(first.NodeCount(), len(first.Edges()))
		printNextStep("Render it", fmt.Sprintf("edgekit render %s", input))
	}
	return nil
}

// verifyAgreement checks that both representations report the same node
// count and canonical edge set. A disagreement means a representation bug,
// reported as an internal error.
func verifyAgreement(mat, list graph.Graph) error {
	if mat.NodeCount() != list.NodeCount() {
		return apperrors.New(apperrors.ErrCodeInternal,
			"representations disagree on node count: matrix %d, list %d",
			mat.NodeCount(), list.NodeCount())
	}
	me, le := mat.Edges(), list.Edges()
	if len(me) != len(le) {
		return apperrors.New(apperrors.ErrCodeInternal,
			"representations disagree on edge count: matrix %d, list %d", len(me), len(le))
	}
	for i := range me {
		if me[i] != le[i] {
			return apperrors.New(apperrors.ErrCodeInternal,
				"representations disagree at edge %d: matrix %v, list %v", i, me[i], le[i])
		}
	}
	return nil
}

// buildTargets selects the representations to populate. The matrix comes
// first so it is also the one printed first.
func buildTargets(repr string, mat, list graph.Graph) []graph.Graph {
	switch repr {
	case reprMatrix:
		return []graph.Graph{mat}
	case reprList:
		return []graph.Graph{list}
	default:
		return []graph.Graph{mat, list}
	}
}

// printEdgeSet writes one representation's edges to stdout, with a styled
// heading unless plain output was requested.
func printEdgeSet(title string, g graph.Graph, plain bool) error {
	if !plain {
		fmt.Println(StyleTitle.Render(title))
	}
	return edgelist.Write(os.Stdout, g)
}
