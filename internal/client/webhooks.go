package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// WebhooksClient implements dato.WebhooksClient.
type WebhooksClient struct {
	httpClient *http.Client
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(httpClient *http.Client) *WebhooksClient {
	return &WebhooksClient{httpClient: httpClient}
}

func decodeWebhook(e *entity) (*dato.Webhook, error) {
	var webhook dato.Webhook
	if err := e.decodeAttributes(&webhook); err != nil {
		return nil, err
	}

	webhook.ID = e.ID

	return &webhook, nil
}

// List implements dato.WebhooksClient.List.
func (c *WebhooksClient) List(ctx context.Context) ([]dato.Webhook, error) {
	resp, err := c.httpClient.Get(ctx, "/webhooks", nil)
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	entities, _, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	webhooks := make([]dato.Webhook, 0, len(entities))

	for i := range entities {
		webhook, err := decodeWebhook(&entities[i])
		if err != nil {
			return nil, err
		}

		webhooks = append(webhooks, *webhook)
	}

	return webhooks, nil
}

// Get implements dato.WebhooksClient.Get.
func (c *WebhooksClient) Get(ctx context.Context, webhookID string) (*dato.Webhook, error) {
	resp, err := c.httpClient.Get(ctx, "/webhooks/"+webhookID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting webhook: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeWebhook(e)
}

// Create implements dato.WebhooksClient.Create.
func (c *WebhooksClient) Create(ctx context.Context, request *dato.WebhookCreateRequest) (*dato.Webhook, error) {
	e, err := newEntity("webhook", "", request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/webhooks", payload(e))
	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	created, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeWebhook(created)
}

// Update implements dato.WebhooksClient.Update.
func (c *WebhooksClient) Update(ctx context.Context, webhookID string, request *dato.WebhookUpdateRequest) (*dato.Webhook, error) {
	e, err := newEntity("webhook", webhookID, request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/webhooks/"+webhookID, payload(e))
	if err != nil {
		return nil, fmt.Errorf("updating webhook: %w", err)
	}

	updated, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeWebhook(updated)
}

// Delete implements dato.WebhooksClient.Delete.
func (c *WebhooksClient) Delete(ctx context.Context, webhookID string) (*dato.Webhook, error) {
	resp, err := c.httpClient.Delete(ctx, "/webhooks/"+webhookID)
	if err != nil {
		return nil, fmt.Errorf("deleting webhook: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeWebhook(e)
}
