package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/edgekit/edgekit/pkg/cache"
	"github.com/edgekit/edgekit/pkg/edgelist"
	"github.com/edgekit/edgekit/pkg/graph"
	"github.com/edgekit/edgekit/pkg/graphio"
	"github.com/edgekit/edgekit/pkg/observability"
	"github.com/edgekit/edgekit/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path; derived from input when empty
	format  string // output format: dot, json, svg, png
	layout  string // graphviz layout engine
	labels  bool   // draw weight labels on edges
	noCache bool   // bypass the artifact cache
}

// validRenderFormats is the set of supported output formats.
var validRenderFormats = map[string]bool{"dot": true, "json": true, "svg": true, "png": true}

// newRenderCmd creates the render command for generating visualizations.
// Defaults come from the user config; flags override them.
func newRenderCmd(cfg Config) *cobra.Command {
	opts := renderOpts{
		format: cfg.Render.Format,
		layout: cfg.Render.Layout,
		labels: cfg.Render.Labels,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an edge-list file with Graphviz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validRenderFormats[opts.format] {
				return fmt.Errorf("invalid format: %s (must be 'dot', 'json', 'svg', or 'png')", opts.format)
			}
			return runRender(cmd.Context(), args[0], cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot, json")
	cmd.Flags().StringVar(&opts.layout, "layout", opts.layout, "graphviz layout engine: neato (default), dot, circo, fdp")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "draw edge weight labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the rendered-artifact cache")

	return cmd
}

// runRender parses the input, renders it to the requested format, and writes
// the result. Rendered SVG/PNG artifacts are cached by input hash and options
// so re-rendering an unchanged file skips Graphviz entirely.
func runRender(ctx context.Context, input string, cfg Config, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	raw, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}

	sp := newSpinner(ctx, "Rendering "+input)
	sp.Start()
	data, cached, err := renderArtifact(ctx, raw, cfg, opts)
	if ctx.Err() != nil {
		sp.Stop()
		return ctx.Err()
	}
	if err != nil {
		sp.StopWithError("Render failed")
		return err
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		sp.Stop()
		return err
	}

	logger.Debugf("Wrote %d bytes", len(data))
	sp.StopWithSuccess("Render complete")
	printFile(outputPath)
	if cached {
		printDetail("served from cache")
	}
	return nil
}

// renderArtifact produces the output bytes for the requested format,
// consulting the artifact cache for svg/png. The bool result reports whether
// the artifact came from cache.
func renderArtifact(ctx context.Context, raw []byte, cfg Config, opts *renderOpts) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)

	rows, err := edgelist.Parse(strings.NewReader(string(raw)))
	if err != nil {
		return nil, false, err
	}
	g := graph.NewAdjacencyList()
	if err := edgelist.Build(rows, g); err != nil {
		return nil, false, err
	}
	logger.Debugf("Loaded graph: %d nodes, %d edges", g.NodeCount(), len(g.Edges()))

	if opts.format == "json" {
		data, err := graphio.Marshal(g)
		return data, false, err
	}

	dot := render.ToDOT(g, render.Options{Labels: opts.labels, Layout: opts.layout})
	if opts.format == "dot" {
		return []byte(dot), false, nil
	}

	c := openArtifactCache(ctx, cfg, opts.noCache)
	defer c.Close()

	key := cache.ArtifactKey(cache.Hash(raw), opts.format,
		fmt.Sprintf("layout=%s labels=%t", opts.layout, opts.labels))

	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	start := time.Now()
	observability.Build().OnRenderStart(ctx, opts.format)

	var data []byte
	switch opts.format {
	case "svg":
		data, err = render.SVG(ctx, dot)
	case "png":
		data, err = render.PNG(ctx, dot)
	}
	observability.Build().OnRenderComplete(ctx, opts.format, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
	if err := c.Set(ctx, key, data, ttl); err != nil {
		logger.Debugf("Cache write failed: %v", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, false, nil
}

// openArtifactCache returns the file cache under the user cache directory,
// or the null cache when caching is disabled or the directory is unusable.
func openArtifactCache(ctx context.Context, cfg Config, noCache bool) cache.Cache {
	if noCache || cfg.Cache.Disabled {
		return cache.NullCache{}
	}

	dir := cfg.Cache.Dir
	if dir == "" {
		base, err := cacheDir()
		if err != nil {
			return cache.NullCache{}
		}
		dir = filepath.Join(base, "artifacts")
	}

	c, err := cache.NewFileCache(dir)
	if err != nil {
		loggerFromContext(ctx).Debugf("Cache unavailable: %v", err)
		return cache.NullCache{}
	}
	return c
}
