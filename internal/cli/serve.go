package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gensudoku/internal/server"
	"github.com/matzehuels/gensudoku/pkg/cache"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// process receives a signal.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen string
		redis  string
		mongo  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the puzzle API over HTTP",
		Long: `Serve the gensudoku HTTP API.

The API exposes puzzle generation and solving, and archives every generated
puzzle:

  POST /api/generate      generate a puzzle (optional seed, extraHints)
  POST /api/solve         solve a submitted grid
  GET  /api/puzzles       list archived puzzles
  GET  /api/puzzles/{id}  fetch an archived puzzle

Without --redis responses are cached in process memory; without --mongo the
puzzle archive lives in process memory and is lost on restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), listen, redis, mongo)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", c.Config.Listen, "address to listen on")
	cmd.Flags().StringVar(&redis, "redis", c.Config.Redis, "Redis address for the response cache (e.g. localhost:6379)")
	cmd.Flags().StringVar(&mongo, "mongo", c.Config.Mongo, "MongoDB URI for the puzzle archive (e.g. mongodb://localhost:27017)")

	return cmd
}

// runServe starts the HTTP server and blocks until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, listen, redisAddr, mongoURI string) error {
	responseCache, err := c.newCache(ctx, redisAddr)
	if err != nil {
		return fmt.Errorf("connect cache: %w", err)
	}
	defer responseCache.Close()

	store, err := c.newStore(ctx, mongoURI)
	if err != nil {
		return fmt.Errorf("connect store: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(shutdownCtx); err != nil {
			c.Logger.Warn("closing store", "error", err)
		}
	}()

	srv := server.New(c.Logger, store, responseCache, c.Config.StepLimit)
	httpSrv := &http.Server{
		Addr:              listen,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			c.Logger.Warn("shutdown", "error", err)
		}
	}()

	c.Logger.Info("listening", "addr", listen)
	if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	c.Logger.Info("server stopped")
	return nil
}

// newCache selects the response cache backend. Redis wins over the
// directory cache when both are configured.
func (c *CLI) newCache(ctx context.Context, redisAddr string) (cache.Cache, error) {
	if redisAddr != "" {
		c.Logger.Debug("using redis cache", "addr", redisAddr)
		return cache.NewRedisCache(ctx, redisAddr)
	}
	if c.Config.CacheDir != "" {
		c.Logger.Debug("using file cache", "dir", c.Config.CacheDir)
		return cache.NewFileCache(c.Config.CacheDir)
	}
	return cache.NewMemoryCache(), nil
}

// newStore selects the puzzle archive backend.
func (c *CLI) newStore(ctx context.Context, mongoURI string) (server.Store, error) {
	if mongoURI == "" {
		return server.NewMemoryStore(), nil
	}
	c.Logger.Debug("using mongo store", "uri", mongoURI)
	return server.NewMongoStore(ctx, mongoURI)
}
