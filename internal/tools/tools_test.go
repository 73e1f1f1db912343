package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/datocms-community/datocms-mcp/internal/handler"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

func newTestFactory(t *testing.T) *handler.Factory {
	t.Helper()

	manager, err := handler.NewClientManager(
		func(_ *dato.Config) (dato.Client, error) { return nil, nil },
		dato.Config{}, 8)
	require.NoError(t, err)

	return handler.NewFactory(handler.NewRegistry(), manager, zap.NewNop(), false)
}

func TestAll_ToolSurface(t *testing.T) {
	t.Parallel()

	tools := All(newTestFactory(t))
	require.NotEmpty(t, tools)

	seen := map[string]bool{}

	for _, tool := range tools {
		assert.True(t, strings.HasPrefix(tool.Name, "datocms_"),
			"tool %q must carry the datocms_ prefix", tool.Name)
		assert.False(t, seen[tool.Name], "duplicate tool name %q", tool.Name)
		seen[tool.Name] = true

		assert.NotEmpty(t, tool.Description, "tool %q has no description", tool.Name)
		assert.NotNil(t, tool.Schema, "tool %q has no schema", tool.Name)
		assert.NotNil(t, tool.Handler, "tool %q has no handler", tool.Name)
	}
}

func TestAll_EveryToolRequiresToken(t *testing.T) {
	t.Parallel()

	for _, tool := range All(newTestFactory(t)) {
		assert.Contains(t, tool.Schema.Required, "api_token",
			"tool %q must require api_token", tool.Name)
	}
}

func TestAll_DestructiveToolsAreNotReadOnly(t *testing.T) {
	t.Parallel()

	for _, tool := range All(newTestFactory(t)) {
		if tool.Destructive {
			assert.False(t, tool.ReadOnly,
				"tool %q cannot be both destructive and read-only", tool.Name)
		}
	}
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	defaults := Defaults{APIToken: "configured-token", Environment: "sandbox"}

	tests := []struct {
		name        string
		args        handler.Args
		token       any
		environment any
	}{
		{
			name:        "both absent",
			args:        handler.Args{},
			token:       "configured-token",
			environment: "sandbox",
		},
		{
			name:        "caller token wins",
			args:        handler.Args{"api_token": "caller-token"},
			token:       "caller-token",
			environment: "sandbox",
		},
		{
			name:        "caller environment wins",
			args:        handler.Args{"environment": "main"},
			token:       "configured-token",
			environment: "main",
		},
		{
			name:        "explicit nil is preserved",
			args:        handler.Args{"api_token": nil},
			token:       nil,
			environment: "sandbox",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			applyDefaults(tt.args, defaults)

			assert.Equal(t, tt.token, tt.args["api_token"])
			assert.Equal(t, tt.environment, tt.args["environment"])
		})
	}
}

func TestApplyDefaults_EmptyDefaultsInjectNothing(t *testing.T) {
	t.Parallel()

	args := handler.Args{}
	applyDefaults(args, Defaults{})

	assert.NotContains(t, args, "api_token")
	assert.NotContains(t, args, "environment")
}
