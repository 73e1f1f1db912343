package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// FieldsetsClient implements dato.FieldsetsClient.
type FieldsetsClient struct {
	httpClient *http.Client
}

// NewFieldsetsClient creates a new fieldsets client.
func NewFieldsetsClient(httpClient *http.Client) *FieldsetsClient {
	return &FieldsetsClient{httpClient: httpClient}
}

func decodeFieldset(e *entity) (*dato.Fieldset, error) {
	var fieldset dato.Fieldset
	if err := e.decodeAttributes(&fieldset); err != nil {
		return nil, err
	}

	fieldset.ID = e.ID
	fieldset.ItemTypeID = e.relID("item_type")

	return &fieldset, nil
}

// List implements dato.FieldsetsClient.List. Fieldsets are listed per model.
func (c *FieldsetsClient) List(ctx context.Context, itemTypeID string) ([]dato.Fieldset, error) {
	resp, err := c.httpClient.Get(ctx, "/item-types/"+itemTypeID+"/fieldsets", nil)
	if err != nil {
		return nil, fmt.Errorf("listing fieldsets: %w", err)
	}

	entities, _, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	fieldsets := make([]dato.Fieldset, 0, len(entities))

	for i := range entities {
		fieldset, err := decodeFieldset(&entities[i])
		if err != nil {
			return nil, err
		}

		fieldsets = append(fieldsets, *fieldset)
	}

	return fieldsets, nil
}

// Get implements dato.FieldsetsClient.Get.
func (c *FieldsetsClient) Get(ctx context.Context, fieldsetID string) (*dato.Fieldset, error) {
	resp, err := c.httpClient.Get(ctx, "/fieldsets/"+fieldsetID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting fieldset: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeFieldset(e)
}

// Create implements dato.FieldsetsClient.Create.
func (c *FieldsetsClient) Create(ctx context.Context, itemTypeID string, request *dato.FieldsetCreateRequest) (*dato.Fieldset, error) {
	e, err := newEntity("fieldset", "", request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/item-types/"+itemTypeID+"/fieldsets", payload(e))
	if err != nil {
		return nil, fmt.Errorf("creating fieldset: %w", err)
	}

	created, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeFieldset(created)
}

// Update implements dato.FieldsetsClient.Update.
func (c *FieldsetsClient) Update(ctx context.Context, fieldsetID string, request *dato.FieldsetUpdateRequest) (*dato.Fieldset, error) {
	e, err := newEntity("fieldset", fieldsetID, request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/fieldsets/"+fieldsetID, payload(e))
	if err != nil {
		return nil, fmt.Errorf("updating fieldset: %w", err)
	}

	updated, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeFieldset(updated)
}

// Delete implements dato.FieldsetsClient.Delete.
func (c *FieldsetsClient) Delete(ctx context.Context, fieldsetID string) (*dato.Fieldset, error) {
	resp, err := c.httpClient.Delete(ctx, "/fieldsets/"+fieldsetID)
	if err != nil {
		return nil, fmt.Errorf("deleting fieldset: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeFieldset(e)
}
