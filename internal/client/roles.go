package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// RolesClient implements dato.RolesClient.
type RolesClient struct {
	httpClient *http.Client
}

// NewRolesClient creates a new roles client.
func NewRolesClient(httpClient *http.Client) *RolesClient {
	return &RolesClient{httpClient: httpClient}
}

func decodeRole(e *entity) (*dato.Role, error) {
	var role dato.Role
	if err := e.decodeAttributes(&role); err != nil {
		return nil, err
	}

	role.ID = e.ID

	return &role, nil
}

// List implements dato.RolesClient.List.
func (c *RolesClient) List(ctx context.Context) ([]dato.Role, error) {
	resp, err := c.httpClient.Get(ctx, "/roles", nil)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}

	entities, _, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	roles := make([]dato.Role, 0, len(entities))

	for i := range entities {
		role, err := decodeRole(&entities[i])
		if err != nil {
			return nil, err
		}

		roles = append(roles, *role)
	}

	return roles, nil
}

// Get implements dato.RolesClient.Get.
func (c *RolesClient) Get(ctx context.Context, roleID string) (*dato.Role, error) {
	resp, err := c.httpClient.Get(ctx, "/roles/"+roleID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting role: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeRole(e)
}

// Create implements dato.RolesClient.Create.
func (c *RolesClient) Create(ctx context.Context, request *dato.RoleCreateRequest) (*dato.Role, error) {
	e, err := newEntity("role", "", request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/roles", payload(e))
	if err != nil {
		return nil, fmt.Errorf("creating role: %w", err)
	}

	created, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeRole(created)
}

// Update implements dato.RolesClient.Update.
func (c *RolesClient) Update(ctx context.Context, roleID string, request *dato.RoleUpdateRequest) (*dato.Role, error) {
	e, err := newEntity("role", roleID, request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/roles/"+roleID, payload(e))
	if err != nil {
		return nil, fmt.Errorf("updating role: %w", err)
	}

	updated, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeRole(updated)
}

// Duplicate implements dato.RolesClient.Duplicate.
func (c *RolesClient) Duplicate(ctx context.Context, roleID string) (*dato.Role, error) {
	resp, err := c.httpClient.Post(ctx, "/roles/"+roleID+"/duplicate", nil)
	if err != nil {
		return nil, fmt.Errorf("duplicating role: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeRole(e)
}

// Delete implements dato.RolesClient.Delete.
func (c *RolesClient) Delete(ctx context.Context, roleID string) (*dato.Role, error) {
	resp, err := c.httpClient.Delete(ctx, "/roles/"+roleID)
	if err != nil {
		return nil, fmt.Errorf("deleting role: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeRole(e)
}
