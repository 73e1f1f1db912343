// Package tools declares every DatoCMS operation exposed by the server. Each
// tool is a thin call site: a schema, a descriptor, and a one-shot action
// against the CMA client, composed by the handler factory.
package tools

import (
	"context"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/datocms-community/datocms-mcp/internal/handler"
)

// Tool binds a composed handler to its transport-facing metadata.
type Tool struct {
	Name        string
	Description string
	Schema      *jsonschema.Schema
	Handler     handler.Func

	// Annotation hints for the transport.
	ReadOnly    bool
	Idempotent  bool
	Destructive bool
}

// All builds the full tool surface.
func All(f *handler.Factory) []Tool {
	var tools []Tool

	tools = append(tools, recordTools(f)...)
	tools = append(tools, schemaTools(f)...)
	tools = append(tools, uploadTools(f)...)
	tools = append(tools, accessTokenTools(f)...)
	tools = append(tools, roleTools(f)...)
	tools = append(tools, collaboratorTools(f)...)
	tools = append(tools, webhookTools(f)...)
	tools = append(tools, environmentTools(f)...)
	tools = append(tools, siteTools(f)...)
	tools = append(tools, uiTools(f)...)

	return tools
}

// Defaults are credentials injected into any invocation that omits them,
// typically from the server's config file. Arguments supplied by the MCP
// client always win.
type Defaults struct {
	APIToken    string
	Environment string
}

// Register adds every tool to the MCP server. All tools talk to a remote
// API, so they are open-world.
func Register(server *mcp.Server, tools []Tool, defaults Defaults) {
	for _, tool := range tools {
		register(server, tool, defaults)
	}
}

func register(server *mcp.Server, tool Tool, defaults Defaults) {
	destructive := tool.Destructive
	openWorld := true

	server.AddTool(&mcp.Tool{
		Name:        tool.Name,
		Description: tool.Description,
		InputSchema: tool.Schema,
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    tool.ReadOnly,
			IdempotentHint:  tool.Idempotent,
			DestructiveHint: &destructive,
			OpenWorldHint:   &openWorld,
		},
	}, dispatch(tool.Handler, defaults))
}

// dispatch adapts a composed handler to the transport's handler signature.
// The handler pipeline owns all failure shaping, so the transport never sees
// an error.
func dispatch(h handler.Func, defaults Defaults) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := handler.Args{}

		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return handler.ToolResult(handler.Failure(handler.CodeValidationError,
					"arguments must be a JSON object: "+err.Error())), nil
			}
		}

		applyDefaults(args, defaults)

		envelope, err := h(ctx, args)
		if err != nil {
			// The error boundary converts action failures; this only fires
			// for faults outside the composed pipeline.
			envelope = handler.FailureFromError(err)
		}

		return handler.ToolResult(envelope), nil
	}
}

// applyDefaults fills in configured credentials for invocations that omit
// them. Arguments supplied by the caller are never overwritten.
func applyDefaults(args handler.Args, defaults Defaults) {
	if _, ok := args["api_token"]; !ok && defaults.APIToken != "" {
		args["api_token"] = defaults.APIToken
	}

	if _, ok := args["environment"]; !ok && defaults.Environment != "" {
		args["environment"] = defaults.Environment
	}
}
