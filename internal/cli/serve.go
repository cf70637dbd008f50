package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/sigilgen/sigil/internal/config"
	"github.com/sigilgen/sigil/internal/server"
	"github.com/sigilgen/sigil/pkg/cache"
)

// serveCommand creates the serve command for running the HTTP server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the identicon HTTP server",
		Long:  `Serve starts an HTTP server that renders identicons: GET /{input} returns a PNG, with w and inverted query parameters. Configuration is read from an optional TOML file; --addr overrides the configured listen address.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, addr)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, configPath, addr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	theme, err := cfg.BuildTheme()
	if err != nil {
		return err
	}

	store, err := c.newCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	srv, err := server.New(theme, c.Logger, server.Options{
		Cache:        store,
		DefaultWidth: cfg.Server.DefaultWidth,
		MaxWidth:     cfg.Server.MaxWidth,
		CacheTTL:     cfg.Cache.TTL.Duration,
	})
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", cfg.Server.Addr, "rows", theme.Rows, "cache", cfg.Cache.Backend)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// newCache builds the cache backend selected by the configuration.
func (c *CLI) newCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "", "none":
		return cache.NewNullCache(), nil
	case "file":
		dir := cfg.Cache.Dir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				return nil, err
			}
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cfg.Cache.RedisAddr)
	case "mongo":
		return cache.NewMongoCache(ctx, cfg.Cache.MongoURI, cfg.Cache.MongoDB)
	default:
		// config.Load validates the backend name; this is unreachable.
		return cache.NewNullCache(), nil
	}
}
