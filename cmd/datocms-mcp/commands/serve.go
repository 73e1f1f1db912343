package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/datocms-community/datocms-mcp/internal/constants"
	"github.com/datocms-community/datocms-mcp/internal/logging"
	"github.com/datocms-community/datocms-mcp/internal/server"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

const httpShutdownGrace = 10 * time.Second

// ErrUnknownTransport is returned for a transport other than stdio or http.
var ErrUnknownTransport = errors.New("transport must be \"stdio\" or \"http\"")

// NewServeCommand creates the serve command.
func NewServeCommand(version string) *cobra.Command {
	var (
		transport string
		addr      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the MCP server on stdio (for MCP clients that spawn the process)
or on the streamable HTTP transport.

Credentials are supplied per tool call via the api_token argument; a default
token can be configured with "datocms-mcp configure" or the
DATOCMS_MCP_API_TOKEN environment variable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), version, transport, addr)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "stdio", "transport to serve on (stdio, http)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address for the http transport")

	return cmd
}

func runServe(parent context.Context, version, transport, addr string) error {
	config := loadConfig()

	logger, err := logging.New(debugEnabled())
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	base, err := baseClientConfig(config)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Options{
		Version:            version,
		Debug:              debugEnabled(),
		BaseConfig:         base,
		DefaultAPIToken:    config.APIToken,
		DefaultEnvironment: config.Environment,
		Logger:             logger,
	})
	if err != nil {
		return fmt.Errorf("building server: %w", err)
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch transport {
	case "stdio":
		return srv.RunStdio(ctx)
	case "http":
		return serveHTTP(ctx, srv, addr, logger)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTransport, transport)
	}
}

func serveHTTP(ctx context.Context, srv *server.Server, addr string, logger *zap.Logger) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.HTTPHandler(),
		ReadHeaderTimeout: constants.DefaultHTTPTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("starting MCP server on http",
			zap.String("addr", addr), zap.Int("tools", srv.ToolCount()))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownGrace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}

	return nil
}

// baseClientConfig translates the CLI configuration into the CMA client's
// base configuration. Token and environment are filled in per request.
func baseClientConfig(config *Config) (dato.Config, error) {
	cache, err := buildCache(config.Cache)
	if err != nil {
		return dato.Config{}, err
	}

	return dato.Config{
		APIEndpoint:  config.APIEndpoint,
		HTTPTimeout:  constants.DefaultHTTPTimeout,
		RetryMax:     constants.DefaultRetryMax,
		RetryWaitMin: constants.DefaultRetryWaitMin,
		RetryWaitMax: constants.DefaultRetryWaitMax,
		Cache:        cache,
	}, nil
}

func buildCache(settings CacheSettings) (dato.Cache, error) {
	builder := dato.NewCacheBuilder()

	if settings.TTL > 0 {
		builder.WithOptions(&dato.CacheOptions{DefaultTTL: settings.TTL})
	}

	switch settings.Backend {
	case "", "memory":
		builder.WithType(dato.CacheTypeMemory)

		if settings.MaxSize > 0 {
			builder.WithMemoryConfig(settings.MaxSize)
		}
	case "nats":
		builder.WithType(dato.CacheTypeNATS).WithNATSConfig(&dato.NATSKVConfig{
			URL:    settings.NATSURL,
			Bucket: settings.NATSBucket,
			TTL:    settings.TTL,
		})
	case "none":
		builder.WithType(dato.CacheTypeNone)
	default:
		return nil, fmt.Errorf("%w: %s", dato.ErrUnsupportedCacheType, settings.Backend)
	}

	cache, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building cache: %w", err)
	}

	return cache, nil
}
