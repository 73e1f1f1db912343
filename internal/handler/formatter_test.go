package handler_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datocms-community/datocms-mcp/internal/constants"
	"github.com/datocms-community/datocms-mcp/internal/handler"
)

func TestChunkText_RoundTrip(t *testing.T) {
	t.Parallel()

	max := constants.MaxResponseLength

	tests := []struct {
		name           string
		text           string
		expectedChunks int
	}{
		{"empty", "", 1},
		{"single byte", "x", 1},
		{"exactly max", strings.Repeat("a", max), 1},
		{"one over max", strings.Repeat("a", max+1), 2},
		{"several blocks", strings.Repeat("b", 3*max+max/2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			chunks := handler.ChunkText(tt.text)

			assert.Len(t, chunks, tt.expectedChunks)
			assert.Equal(t, tt.text, strings.Join(chunks, ""))

			for _, chunk := range chunks {
				assert.LessOrEqual(t, len(chunk), max)
			}
		})
	}
}

func TestToolResult_Success(t *testing.T) {
	t.Parallel()

	result := handler.ToolResult(handler.Success(map[string]string{"id": "r1"}))

	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)

	var envelope handler.Envelope
	require.NoError(t, json.Unmarshal([]byte(text.Text), &envelope))
	assert.True(t, envelope.Success)
}

func TestToolResult_Failure(t *testing.T) {
	t.Parallel()

	result := handler.ToolResult(handler.Failure(handler.CodeNotFound, "item with ID 'x' not found"))

	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)

	var envelope handler.Envelope
	require.NoError(t, json.Unmarshal([]byte(text.Text), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "item with ID 'x' not found", envelope.Error)
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, handler.CodeNotFound, envelope.Meta.ErrorCode)
}

func TestToolResult_LargePayloadSplitsAndReassembles(t *testing.T) {
	t.Parallel()

	big := strings.Repeat("z", 2*constants.MaxResponseLength)
	result := handler.ToolResult(handler.Success(big))

	assert.Greater(t, len(result.Content), 1)

	var joined strings.Builder
	for _, content := range result.Content {
		text, ok := content.(*mcp.TextContent)
		require.True(t, ok)
		joined.WriteString(text.Text)
	}

	var envelope handler.Envelope
	require.NoError(t, json.Unmarshal([]byte(joined.String()), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, big, envelope.Data)
}
