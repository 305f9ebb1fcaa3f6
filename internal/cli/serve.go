package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yosukei/amida/internal/server"
	"github.com/yosukei/amida/pkg/errors"
	"github.com/yosukei/amida/pkg/session"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr          string        // listen address
	backend       string        // store backend: "memory", "file", or "redis"
	redisAddr     string        // redis address (defaults to $REDIS_ADDR)
	redisPassword string        // redis password
	redisDB       int           // redis database number
	ttl           time.Duration // game lifetime
}

// newServeCmd creates the serve command for running the HTTP API.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:    ":8080",
		backend: "memory",
		ttl:     session.DefaultTTL,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve ladder games over HTTP",
		Long: `Serve starts the amida HTTP API.

Games are created with POST /games and addressed by ID afterwards. The
store backend decides how far games travel: "memory" keeps them in
process, "file" persists them on disk, and "redis" shares them across
instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.backend, "store", opts.backend, "game store backend: memory (default), file, redis")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", os.Getenv("REDIS_ADDR"), "redis address (defaults to $REDIS_ADDR)")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", "", "redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "redis database number")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", opts.ttl, "game lifetime")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	store, err := newStore(opts)
	if err != nil {
		return err
	}
	logger.Info("starting server", "store", opts.backend, "ttl", opts.ttl)

	srv := server.New(store,
		server.WithLogger(logger),
		server.WithGameTTL(opts.ttl),
	)
	return srv.ListenAndServe(opts.addr)
}

// newStore builds the session store for the chosen backend.
func newStore(opts *serveOpts) (session.Store, error) {
	switch opts.backend {
	case "memory":
		return session.NewMemoryStore(), nil
	case "file":
		return session.NewFileStore("")
	case "redis":
		if opts.redisAddr == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "redis backend needs --redis-addr or $REDIS_ADDR")
		}
		return session.NewRedisStore(opts.redisAddr, opts.redisPassword, opts.redisDB,
			session.WithTTL(opts.ttl),
		), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown store backend: %s (must be 'memory', 'file', or 'redis')", opts.backend)
	}
}
