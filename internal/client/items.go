package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// ItemsClient implements dato.ItemsClient.
type ItemsClient struct {
	httpClient *http.Client
}

// NewItemsClient creates a new items client.
func NewItemsClient(httpClient *http.Client) *ItemsClient {
	return &ItemsClient{httpClient: httpClient}
}

// decodeItem translates a JSON:API item entity into a flat record. Record
// attributes are the model's dynamic fields, so they stay a map.
func decodeItem(e *entity) (*dato.Item, error) {
	item := &dato.Item{
		ID:         e.ID,
		ItemTypeID: e.relID("item_type"),
		Fields:     map[string]any{},
	}

	if len(e.Attributes) > 0 {
		if err := json.Unmarshal(e.Attributes, &item.Fields); err != nil {
			return nil, fmt.Errorf("decoding item fields: %w", err)
		}
	}

	var meta dato.ItemMeta
	if err := e.decodeMeta(&meta); err != nil {
		return nil, err
	}

	if len(e.Meta) > 0 {
		item.Meta = &meta
	}

	return item, nil
}

func decodeItems(entities []entity) ([]dato.Item, error) {
	items := make([]dato.Item, 0, len(entities))

	for i := range entities {
		item, err := decodeItem(&entities[i])
		if err != nil {
			return nil, err
		}

		items = append(items, *item)
	}

	return items, nil
}

// List implements dato.ItemsClient.List.
func (c *ItemsClient) List(ctx context.Context, params *dato.QueryParams) (*dato.ItemPage, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/items", query)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}

	entities, total, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	items, err := decodeItems(entities)
	if err != nil {
		return nil, err
	}

	return &dato.ItemPage{Data: items, TotalCount: total}, nil
}

// Get implements dato.ItemsClient.Get.
func (c *ItemsClient) Get(ctx context.Context, itemID string, params *dato.QueryParams) (*dato.Item, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/items/"+itemID, query)
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeItem(e)
}

// Create implements dato.ItemsClient.Create.
func (c *ItemsClient) Create(ctx context.Context, request *dato.ItemCreateRequest) (*dato.Item, error) {
	e, err := newEntity("item", "", request.Fields, map[string]relationship{
		"item_type": toOne("item_type", request.ItemTypeID),
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/items", payload(e))
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	created, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeItem(created)
}

// Update implements dato.ItemsClient.Update.
func (c *ItemsClient) Update(ctx context.Context, itemID string, fields map[string]any) (*dato.Item, error) {
	e, err := newEntity("item", itemID, fields, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/items/"+itemID, payload(e))
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}

	updated, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeItem(updated)
}

// Delete implements dato.ItemsClient.Delete.
func (c *ItemsClient) Delete(ctx context.Context, itemID string) (*dato.Item, error) {
	resp, err := c.httpClient.Delete(ctx, "/items/"+itemID)
	if err != nil {
		return nil, fmt.Errorf("deleting item: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeItem(e)
}

// Publish implements dato.ItemsClient.Publish.
func (c *ItemsClient) Publish(ctx context.Context, itemID string) (*dato.Item, error) {
	resp, err := c.httpClient.Put(ctx, "/items/"+itemID+"/publish", nil)
	if err != nil {
		return nil, fmt.Errorf("publishing item: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeItem(e)
}

// Unpublish implements dato.ItemsClient.Unpublish.
func (c *ItemsClient) Unpublish(ctx context.Context, itemID string) (*dato.Item, error) {
	resp, err := c.httpClient.Put(ctx, "/items/"+itemID+"/unpublish", nil)
	if err != nil {
		return nil, fmt.Errorf("unpublishing item: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeItem(e)
}

// Duplicate implements dato.ItemsClient.Duplicate.
func (c *ItemsClient) Duplicate(ctx context.Context, itemID string) (*dato.Item, error) {
	resp, err := c.httpClient.Post(ctx, "/items/"+itemID+"/duplicate", nil)
	if err != nil {
		return nil, fmt.Errorf("duplicating item: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeItem(e)
}
