package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// MaintenanceModeClient implements dato.MaintenanceModeClient.
type MaintenanceModeClient struct {
	httpClient *http.Client
}

// NewMaintenanceModeClient creates a new maintenance mode client.
func NewMaintenanceModeClient(httpClient *http.Client) *MaintenanceModeClient {
	return &MaintenanceModeClient{httpClient: httpClient}
}

func decodeMaintenanceMode(e *entity) (*dato.MaintenanceMode, error) {
	var mode dato.MaintenanceMode
	if err := e.decodeAttributes(&mode); err != nil {
		return nil, err
	}

	mode.ID = e.ID

	return &mode, nil
}

// Get implements dato.MaintenanceModeClient.Get.
func (c *MaintenanceModeClient) Get(ctx context.Context) (*dato.MaintenanceMode, error) {
	resp, err := c.httpClient.Get(ctx, "/maintenance-mode", nil)
	if err != nil {
		return nil, fmt.Errorf("getting maintenance mode: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeMaintenanceMode(e)
}

// Activate implements dato.MaintenanceModeClient.Activate. Without force the
// CMA refuses to activate while collaborators are editing.
func (c *MaintenanceModeClient) Activate(ctx context.Context, force bool) (*dato.MaintenanceMode, error) {
	path := "/maintenance-mode/activate"
	if force {
		path += "?force=true"
	}

	resp, err := c.httpClient.Put(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("activating maintenance mode: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeMaintenanceMode(e)
}

// Deactivate implements dato.MaintenanceModeClient.Deactivate.
func (c *MaintenanceModeClient) Deactivate(ctx context.Context) (*dato.MaintenanceMode, error) {
	resp, err := c.httpClient.Put(ctx, "/maintenance-mode/deactivate", nil)
	if err != nil {
		return nil, fmt.Errorf("deactivating maintenance mode: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeMaintenanceMode(e)
}
