package handler

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/datocms-community/datocms-mcp/internal/constants"
)

// ChunkText splits text into blocks of at most MaxResponseLength bytes,
// preserving byte order. Splits are position-based and may land mid-token;
// consumers reconstruct by concatenation. For any input,
// concat(ChunkText(t)) == t, and a single block is returned exactly when the
// input fits.
func ChunkText(text string) []string {
	max := constants.MaxResponseLength
	if len(text) <= max {
		return []string{text}
	}

	chunks := make([]string, 0, (len(text)+max-1)/max)
	for start := 0; start < len(text); start += max {
		end := start + max
		if end > len(text) {
			end = len(text)
		}

		chunks = append(chunks, text[start:end])
	}

	return chunks
}

// ToolResult renders an envelope as the transport's content blocks. The
// envelope is pretty-printed JSON, split across sequential text blocks when
// it exceeds the block size cap.
func ToolResult(envelope *Envelope) *mcp.CallToolResult {
	serialized, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		// Envelopes are built from JSON-decoded values, so this only fires
		// if an action returns something unserializable.
		serialized = []byte(fmt.Sprintf(`{"success":false,"error":"failed to serialize response: %s"}`, err))
	}

	chunks := ChunkText(string(serialized))

	content := make([]mcp.Content, 0, len(chunks))
	for _, chunk := range chunks {
		content = append(content, &mcp.TextContent{Text: chunk})
	}

	return &mcp.CallToolResult{
		Content: content,
		IsError: !envelope.Success,
	}
}
