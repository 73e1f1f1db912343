package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// WebhookCallsClient implements dato.WebhookCallsClient.
type WebhookCallsClient struct {
	httpClient *http.Client
}

// NewWebhookCallsClient creates a new webhook calls client.
func NewWebhookCallsClient(httpClient *http.Client) *WebhookCallsClient {
	return &WebhookCallsClient{httpClient: httpClient}
}

func decodeWebhookCall(e *entity) (*dato.WebhookCall, error) {
	var call dato.WebhookCall
	if err := e.decodeAttributes(&call); err != nil {
		return nil, err
	}

	call.ID = e.ID
	call.WebhookID = e.relID("webhook")

	return &call, nil
}

// List implements dato.WebhookCallsClient.List.
func (c *WebhookCallsClient) List(ctx context.Context, params *dato.QueryParams) (*dato.WebhookCallPage, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/webhook_calls", query)
	if err != nil {
		return nil, fmt.Errorf("listing webhook calls: %w", err)
	}

	entities, total, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	calls := make([]dato.WebhookCall, 0, len(entities))

	for i := range entities {
		call, err := decodeWebhookCall(&entities[i])
		if err != nil {
			return nil, err
		}

		calls = append(calls, *call)
	}

	return &dato.WebhookCallPage{Data: calls, TotalCount: total}, nil
}

// Resend implements dato.WebhookCallsClient.Resend. The CMA re-delivers the
// original payload asynchronously.
func (c *WebhookCallsClient) Resend(ctx context.Context, callID string) error {
	if _, err := c.httpClient.Post(ctx, "/webhook_calls/"+callID+"/resend_webhook", nil); err != nil {
		return fmt.Errorf("resending webhook call: %w", err)
	}

	return nil
}
