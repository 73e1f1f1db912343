package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// FieldsClient implements dato.FieldsClient.
type FieldsClient struct {
	httpClient *http.Client
}

// NewFieldsClient creates a new fields client.
func NewFieldsClient(httpClient *http.Client) *FieldsClient {
	return &FieldsClient{httpClient: httpClient}
}

func decodeField(e *entity) (*dato.Field, error) {
	var field dato.Field
	if err := e.decodeAttributes(&field); err != nil {
		return nil, err
	}

	field.ID = e.ID
	field.ItemTypeID = e.relID("item_type")
	field.FieldsetID = e.relID("fieldset")

	return &field, nil
}

// List implements dato.FieldsClient.List. Fields are listed per model.
func (c *FieldsClient) List(ctx context.Context, itemTypeID string) ([]dato.Field, error) {
	resp, err := c.httpClient.Get(ctx, "/item-types/"+itemTypeID+"/fields", nil)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}

	entities, _, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	fields := make([]dato.Field, 0, len(entities))

	for i := range entities {
		field, err := decodeField(&entities[i])
		if err != nil {
			return nil, err
		}

		fields = append(fields, *field)
	}

	return fields, nil
}

// Get implements dato.FieldsClient.Get.
func (c *FieldsClient) Get(ctx context.Context, fieldID string) (*dato.Field, error) {
	resp, err := c.httpClient.Get(ctx, "/fields/"+fieldID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting field: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeField(e)
}

// Create implements dato.FieldsClient.Create.
func (c *FieldsClient) Create(ctx context.Context, itemTypeID string, request *dato.FieldCreateRequest) (*dato.Field, error) {
	e, err := newEntity("field", "", request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/item-types/"+itemTypeID+"/fields", payload(e))
	if err != nil {
		return nil, fmt.Errorf("creating field: %w", err)
	}

	created, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeField(created)
}

// Update implements dato.FieldsClient.Update.
func (c *FieldsClient) Update(ctx context.Context, fieldID string, request *dato.FieldUpdateRequest) (*dato.Field, error) {
	e, err := newEntity("field", fieldID, request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/fields/"+fieldID, payload(e))
	if err != nil {
		return nil, fmt.Errorf("updating field: %w", err)
	}

	updated, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeField(updated)
}

// Delete implements dato.FieldsClient.Delete.
func (c *FieldsClient) Delete(ctx context.Context, fieldID string) (*dato.Field, error) {
	resp, err := c.httpClient.Delete(ctx, "/fields/"+fieldID)
	if err != nil {
		return nil, fmt.Errorf("deleting field: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeField(e)
}
