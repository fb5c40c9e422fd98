package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/edgekit/edgekit/pkg/errors"
	"github.com/edgekit/edgekit/pkg/store"
)

const (
	storeMemory = "memory"
	storeRedis  = "redis"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	storeKind string // memory or redis
	redisAddr string // redis host:port, used when storeKind is redis
}

// newServeCmd creates the serve command, which runs the graph HTTP API.
// Defaults come from the user config; flags override them.
func newServeCmd(cfg Config) *cobra.Command {
	opts := serveOpts{
		addr:      cfg.Serve.Addr,
		storeKind: cfg.Serve.Store,
		redisAddr: cfg.Serve.RedisAddr,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve stored graphs over HTTP",
		Long: `Run an HTTP API for storing and querying graphs. Graphs are submitted
as JSON documents and queried by ID: full edge sets, per-node incident
edges, and individual edge weights.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.storeKind, "store", opts.storeKind, "storage backend: memory (default), redis")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "redis address (with --store redis)")

	return cmd
}

// runServe opens the store, starts the HTTP server, and blocks until the
// context is cancelled, then shuts down gracefully.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	s, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newRouter(s, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s (%s store)", opts.addr, opts.storeKind)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// openStore builds the storage backend selected by --store.
func openStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	switch opts.storeKind {
	case storeMemory:
		return store.NewMemoryStore(), nil
	case storeRedis:
		return store.NewRedisStore(ctx, opts.redisAddr)
	}
	return nil, apperrors.New(apperrors.ErrCodeInvalidStore,
		"invalid store: %s (must be 'memory' or 'redis')", opts.storeKind)
}
