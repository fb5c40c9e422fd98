package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/edgekit/edgekit/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "edgekit"

// Execute runs the edgekit CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (edges, render,
// inspect, serve, completion), configures logging based on the --verbose
// flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "EdgeKit builds undirected weighted graphs from edge-list files",
		Long: `EdgeKit reads plain-text edge lists into dual graph representations
(adjacency list and adjacency matrix) and exposes their edge sets: printed to
the terminal, rendered with Graphviz, browsed interactively, or served over
HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	cfg := loadConfigOrDefaults()
	root.AddCommand(newEdgesCmd())
	root.AddCommand(newRenderCmd(cfg))
	root.AddCommand(newInspectCmd())
	root.AddCommand(newServeCmd(cfg))
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// cacheDir returns the cache directory using XDG conventions
// (~/.cache/edgekit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return cacheHome + "/" + appName, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return home + "/.cache/" + appName, nil
}
