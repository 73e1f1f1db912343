package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// EnvironmentsClient implements dato.EnvironmentsClient.
type EnvironmentsClient struct {
	httpClient *http.Client
}

// NewEnvironmentsClient creates a new environments client.
func NewEnvironmentsClient(httpClient *http.Client) *EnvironmentsClient {
	return &EnvironmentsClient{httpClient: httpClient}
}

func decodeEnvironment(e *entity) (*dato.Environment, error) {
	env := &dato.Environment{ID: e.ID}

	var meta dato.EnvironmentMeta
	if err := e.decodeMeta(&meta); err != nil {
		return nil, err
	}

	if len(e.Meta) > 0 {
		env.Meta = &meta
	}

	return env, nil
}

// List implements dato.EnvironmentsClient.List.
func (c *EnvironmentsClient) List(ctx context.Context) ([]dato.Environment, error) {
	resp, err := c.httpClient.Get(ctx, "/environments", nil)
	if err != nil {
		return nil, fmt.Errorf("listing environments: %w", err)
	}

	entities, _, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	environments := make([]dato.Environment, 0, len(entities))

	for i := range entities {
		env, err := decodeEnvironment(&entities[i])
		if err != nil {
			return nil, err
		}

		environments = append(environments, *env)
	}

	return environments, nil
}

// Get implements dato.EnvironmentsClient.Get.
func (c *EnvironmentsClient) Get(ctx context.Context, environmentID string) (*dato.Environment, error) {
	resp, err := c.httpClient.Get(ctx, "/environments/"+environmentID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting environment: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeEnvironment(e)
}

// Fork implements dato.EnvironmentsClient.Fork. The fork runs asynchronously;
// the returned environment starts in the creating state.
func (c *EnvironmentsClient) Fork(ctx context.Context, environmentID string, request *dato.EnvironmentForkRequest) (*dato.Environment, error) {
	doc := &document{Data: entity{ID: request.ID, Type: "environment"}}

	path := "/environments/" + environmentID + "/fork"
	if request.Fast {
		path += "?fast=true"
	}

	resp, err := c.httpClient.Post(ctx, path, doc)
	if err != nil {
		return nil, fmt.Errorf("forking environment: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeEnvironment(e)
}

// Promote implements dato.EnvironmentsClient.Promote. The current primary
// becomes a sandbox and the given environment becomes primary.
func (c *EnvironmentsClient) Promote(ctx context.Context, environmentID string) (*dato.Environment, error) {
	resp, err := c.httpClient.Put(ctx, "/environments/"+environmentID+"/promote", nil)
	if err != nil {
		return nil, fmt.Errorf("promoting environment: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeEnvironment(e)
}

// Rename implements dato.EnvironmentsClient.Rename.
func (c *EnvironmentsClient) Rename(ctx context.Context, environmentID, newID string) (*dato.Environment, error) {
	doc := &document{Data: entity{ID: newID, Type: "environment"}}

	resp, err := c.httpClient.Put(ctx, "/environments/"+environmentID+"/rename", doc)
	if err != nil {
		return nil, fmt.Errorf("renaming environment: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeEnvironment(e)
}

// Delete implements dato.EnvironmentsClient.Delete. The primary environment
// cannot be deleted; the CMA rejects the call.
func (c *EnvironmentsClient) Delete(ctx context.Context, environmentID string) (*dato.Environment, error) {
	resp, err := c.httpClient.Delete(ctx, "/environments/"+environmentID)
	if err != nil {
		return nil, fmt.Errorf("deleting environment: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeEnvironment(e)
}
