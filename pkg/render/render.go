// Package render converts graphs to Graphviz DOT and renders them to SVG or
// PNG in-process via [github.com/goccy/go-graphviz].
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/edgekit/edgekit/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// Labels draws edge weights as labels. Enabled by default in the CLI.
	Labels bool

	// Layout selects the Graphviz layout engine ("neato", "dot", "circo",
	// ...). Empty means neato, which suits undirected graphs.
	Layout string
}

// ToDOT converts a graph to Graphviz DOT format for undirected rendering.
// Node names are 1-indexed to match the text encoding's display form. The
// resulting DOT string can be rendered with [SVG] or [PNG].
func ToDOT(g graph.Graph, opts Options) string {
	layout := opts.Layout
	if layout == "" {
		layout = "neato"
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  layout=%s;\n", layout)
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for n := 0; n < g.NodeCount(); n++ {
		fmt.Fprintf(&buf, "  %d;\n", n+1)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if opts.Labels {
			fmt.Fprintf(&buf, "  %d -- %d [label=%q];\n", e.A+1, e.B+1, fmt.Sprintf("%d", e.Weight))
		} else {
			fmt.Fprintf(&buf, "  %d -- %d;\n", e.A+1, e.B+1)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// PNG renders a DOT graph to PNG using Graphviz.
func PNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
