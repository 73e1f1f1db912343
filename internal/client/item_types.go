package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// ItemTypesClient implements dato.ItemTypesClient.
type ItemTypesClient struct {
	httpClient *http.Client
}

// NewItemTypesClient creates a new item types client.
func NewItemTypesClient(httpClient *http.Client) *ItemTypesClient {
	return &ItemTypesClient{httpClient: httpClient}
}

func decodeItemType(e *entity) (*dato.ItemType, error) {
	var itemType dato.ItemType
	if err := e.decodeAttributes(&itemType); err != nil {
		return nil, err
	}

	itemType.ID = e.ID

	return &itemType, nil
}

// List implements dato.ItemTypesClient.List.
func (c *ItemTypesClient) List(ctx context.Context) ([]dato.ItemType, error) {
	resp, err := c.httpClient.Get(ctx, "/item-types", nil)
	if err != nil {
		return nil, fmt.Errorf("listing item types: %w", err)
	}

	entities, _, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	itemTypes := make([]dato.ItemType, 0, len(entities))

	for i := range entities {
		itemType, err := decodeItemType(&entities[i])
		if err != nil {
			return nil, err
		}

		itemTypes = append(itemTypes, *itemType)
	}

	return itemTypes, nil
}

// Get implements dato.ItemTypesClient.Get.
func (c *ItemTypesClient) Get(ctx context.Context, itemTypeID string) (*dato.ItemType, error) {
	resp, err := c.httpClient.Get(ctx, "/item-types/"+itemTypeID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting item type: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeItemType(e)
}

// Create implements dato.ItemTypesClient.Create.
func (c *ItemTypesClient) Create(ctx context.Context, request *dato.ItemTypeCreateRequest) (*dato.ItemType, error) {
	e, err := newEntity("item_type", "", request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/item-types", payload(e))
	if err != nil {
		return nil, fmt.Errorf("creating item type: %w", err)
	}

	created, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeItemType(created)
}

// Update implements dato.ItemTypesClient.Update.
func (c *ItemTypesClient) Update(ctx context.Context, itemTypeID string, request *dato.ItemTypeUpdateRequest) (*dato.ItemType, error) {
	e, err := newEntity("item_type", itemTypeID, request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/item-types/"+itemTypeID, payload(e))
	if err != nil {
		return nil, fmt.Errorf("updating item type: %w", err)
	}

	updated, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeItemType(updated)
}

// Duplicate implements dato.ItemTypesClient.Duplicate.
func (c *ItemTypesClient) Duplicate(ctx context.Context, itemTypeID string) (*dato.ItemType, error) {
	resp, err := c.httpClient.Post(ctx, "/item-types/"+itemTypeID+"/duplicate", nil)
	if err != nil {
		return nil, fmt.Errorf("duplicating item type: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeItemType(e)
}

// Delete implements dato.ItemTypesClient.Delete.
func (c *ItemTypesClient) Delete(ctx context.Context, itemTypeID string) (*dato.ItemType, error) {
	resp, err := c.httpClient.Delete(ctx, "/item-types/"+itemTypeID)
	if err != nil {
		return nil, fmt.Errorf("deleting item type: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeItemType(e)
}
