// Package server assembles the MCP server: schema registry, client manager,
// handler factory, and the full tool surface, behind stdio and streamable
// HTTP transports.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/datocms-community/datocms-mcp/internal/client"
	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/internal/logging"
	"github.com/datocms-community/datocms-mcp/internal/tools"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// Options configures the server.
type Options struct {
	// Version is reported to MCP clients during initialization.
	Version string

	// Debug enables per-invocation timing logs and verbose HTTP logging.
	Debug bool

	// BaseConfig supplies everything the CMA client needs except the
	// per-request token and environment.
	BaseConfig dato.Config

	// ClientCacheSize bounds the client cache. Zero uses the default.
	ClientCacheSize int

	// DefaultAPIToken is injected into invocations that carry no api_token
	// argument. Empty means every call must supply its own token.
	DefaultAPIToken string

	// DefaultEnvironment is injected into invocations that carry no
	// environment argument.
	DefaultEnvironment string

	// Logger is the process logger. Required.
	Logger *zap.Logger
}

// Server is a fully wired DatoCMS MCP server.
type Server struct {
	mcpServer *mcp.Server
	logger    *zap.Logger
	toolCount int
}

// New wires the server: one schema registry, one client manager, one handler
// factory, and every tool registered against a fresh MCP server.
func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		return nil, dato.ErrConfigRequired
	}

	base := opts.BaseConfig
	base.Debug = opts.Debug
	if base.Logger == nil {
		base.Logger = logging.NewAdapter(opts.Logger)
	}

	manager, err := handler.NewClientManager(newClient, base, opts.ClientCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating client manager: %w", err)
	}

	factory := handler.NewFactory(handler.NewRegistry(), manager, opts.Logger, opts.Debug)

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "datocms-mcp",
		Version: opts.Version,
	}, nil)

	toolset := tools.All(factory)
	tools.Register(mcpServer, toolset, tools.Defaults{
		APIToken:    opts.DefaultAPIToken,
		Environment: opts.DefaultEnvironment,
	})

	return &Server{
		mcpServer: mcpServer,
		logger:    opts.Logger,
		toolCount: len(toolset),
	}, nil
}

// RunStdio serves MCP over stdin/stdout until the context is canceled or the
// client disconnects.
func (s *Server) RunStdio(ctx context.Context) error {
	s.logger.Info("starting MCP server on stdio", zap.Int("tools", s.toolCount))

	if err := s.mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("running stdio transport: %w", err)
	}

	return nil
}

// HTTPHandler returns a streamable-HTTP handler serving this MCP server.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

// ToolCount reports the number of registered tools.
func (s *Server) ToolCount() int {
	return s.toolCount
}

// newClient adapts the concrete CMA client constructor to the client
// factory's interface-returning signature.
func newClient(config *dato.Config) (dato.Client, error) {
	return client.New(config)
}
