package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// BuildTriggersClient implements dato.BuildTriggersClient.
type BuildTriggersClient struct {
	httpClient *http.Client
}

// NewBuildTriggersClient creates a new build triggers client.
func NewBuildTriggersClient(httpClient *http.Client) *BuildTriggersClient {
	return &BuildTriggersClient{httpClient: httpClient}
}

func decodeBuildTrigger(e *entity) (*dato.BuildTrigger, error) {
	var trigger dato.BuildTrigger
	if err := e.decodeAttributes(&trigger); err != nil {
		return nil, err
	}

	trigger.ID = e.ID

	return &trigger, nil
}

// List implements dato.BuildTriggersClient.List.
func (c *BuildTriggersClient) List(ctx context.Context) ([]dato.BuildTrigger, error) {
	resp, err := c.httpClient.Get(ctx, "/build-triggers", nil)
	if err != nil {
		return nil, fmt.Errorf("listing build triggers: %w", err)
	}

	entities, _, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	triggers := make([]dato.BuildTrigger, 0, len(entities))

	for i := range entities {
		trigger, err := decodeBuildTrigger(&entities[i])
		if err != nil {
			return nil, err
		}

		triggers = append(triggers, *trigger)
	}

	return triggers, nil
}

// Create implements dato.BuildTriggersClient.Create.
func (c *BuildTriggersClient) Create(ctx context.Context, request *dato.BuildTriggerCreateRequest) (*dato.BuildTrigger, error) {
	e, err := newEntity("build_trigger", "", request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/build-triggers", payload(e))
	if err != nil {
		return nil, fmt.Errorf("creating build trigger: %w", err)
	}

	created, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeBuildTrigger(created)
}

// Trigger implements dato.BuildTriggersClient.Trigger. It fires the trigger's
// deployment pipeline.
func (c *BuildTriggersClient) Trigger(ctx context.Context, triggerID string) error {
	if _, err := c.httpClient.Post(ctx, "/build-triggers/"+triggerID+"/trigger", nil); err != nil {
		return fmt.Errorf("firing build trigger: %w", err)
	}

	return nil
}

// Delete implements dato.BuildTriggersClient.Delete.
func (c *BuildTriggersClient) Delete(ctx context.Context, triggerID string) (*dato.BuildTrigger, error) {
	resp, err := c.httpClient.Delete(ctx, "/build-triggers/"+triggerID)
	if err != nil {
		return nil, fmt.Errorf("deleting build trigger: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeBuildTrigger(e)
}
