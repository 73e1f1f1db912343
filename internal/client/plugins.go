package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// PluginsClient implements dato.PluginsClient.
type PluginsClient struct {
	httpClient *http.Client
}

// NewPluginsClient creates a new plugins client.
func NewPluginsClient(httpClient *http.Client) *PluginsClient {
	return &PluginsClient{httpClient: httpClient}
}

func decodePlugin(e *entity) (*dato.Plugin, error) {
	var plugin dato.Plugin
	if err := e.decodeAttributes(&plugin); err != nil {
		return nil, err
	}

	plugin.ID = e.ID

	return &plugin, nil
}

// List implements dato.PluginsClient.List.
func (c *PluginsClient) List(ctx context.Context) ([]dato.Plugin, error) {
	resp, err := c.httpClient.Get(ctx, "/plugins", nil)
	if err != nil {
		return nil, fmt.Errorf("listing plugins: %w", err)
	}

	entities, _, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	plugins := make([]dato.Plugin, 0, len(entities))

	for i := range entities {
		plugin, err := decodePlugin(&entities[i])
		if err != nil {
			return nil, err
		}

		plugins = append(plugins, *plugin)
	}

	return plugins, nil
}

// Get implements dato.PluginsClient.Get.
func (c *PluginsClient) Get(ctx context.Context, pluginID string) (*dato.Plugin, error) {
	resp, err := c.httpClient.Get(ctx, "/plugins/"+pluginID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting plugin: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodePlugin(e)
}

// Create implements dato.PluginsClient.Create. Plugins install either from a
// package name or from a direct URL.
func (c *PluginsClient) Create(ctx context.Context, request *dato.PluginCreateRequest) (*dato.Plugin, error) {
	e, err := newEntity("plugin", "", request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/plugins", payload(e))
	if err != nil {
		return nil, fmt.Errorf("creating plugin: %w", err)
	}

	created, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodePlugin(created)
}

// Update implements dato.PluginsClient.Update.
func (c *PluginsClient) Update(ctx context.Context, pluginID string, request *dato.PluginUpdateRequest) (*dato.Plugin, error) {
	e, err := newEntity("plugin", pluginID, request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/plugins/"+pluginID, payload(e))
	if err != nil {
		return nil, fmt.Errorf("updating plugin: %w", err)
	}

	updated, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodePlugin(updated)
}

// Delete implements dato.PluginsClient.Delete.
func (c *PluginsClient) Delete(ctx context.Context, pluginID string) (*dato.Plugin, error) {
	resp, err := c.httpClient.Delete(ctx, "/plugins/"+pluginID)
	if err != nil {
		return nil, fmt.Errorf("deleting plugin: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodePlugin(e)
}
