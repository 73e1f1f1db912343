package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// MenuItemsClient implements dato.MenuItemsClient.
type MenuItemsClient struct {
	httpClient *http.Client
}

// NewMenuItemsClient creates a new menu items client.
func NewMenuItemsClient(httpClient *http.Client) *MenuItemsClient {
	return &MenuItemsClient{httpClient: httpClient}
}

func decodeMenuItem(e *entity) (*dato.MenuItem, error) {
	var menuItem dato.MenuItem
	if err := e.decodeAttributes(&menuItem); err != nil {
		return nil, err
	}

	menuItem.ID = e.ID
	menuItem.ItemTypeID = e.relID("item_type")
	menuItem.ParentID = e.relID("parent")

	return &menuItem, nil
}

func menuItemRelationships(itemTypeID, parentID string) map[string]relationship {
	rels := map[string]relationship{}

	if itemTypeID != "" {
		rels["item_type"] = toOne("item_type", itemTypeID)
	}

	if parentID != "" {
		rels["parent"] = toOne("menu_item", parentID)
	}

	if len(rels) == 0 {
		return nil
	}

	return rels
}

// List implements dato.MenuItemsClient.List.
func (c *MenuItemsClient) List(ctx context.Context) ([]dato.MenuItem, error) {
	resp, err := c.httpClient.Get(ctx, "/menu-items", nil)
	if err != nil {
		return nil, fmt.Errorf("listing menu items: %w", err)
	}

	entities, _, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	menuItems := make([]dato.MenuItem, 0, len(entities))

	for i := range entities {
		menuItem, err := decodeMenuItem(&entities[i])
		if err != nil {
			return nil, err
		}

		menuItems = append(menuItems, *menuItem)
	}

	return menuItems, nil
}

// Get implements dato.MenuItemsClient.Get.
func (c *MenuItemsClient) Get(ctx context.Context, menuItemID string) (*dato.MenuItem, error) {
	resp, err := c.httpClient.Get(ctx, "/menu-items/"+menuItemID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting menu item: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeMenuItem(e)
}

// Create implements dato.MenuItemsClient.Create.
func (c *MenuItemsClient) Create(ctx context.Context, request *dato.MenuItemCreateRequest) (*dato.MenuItem, error) {
	rels := menuItemRelationships(request.ItemTypeID, request.ParentID)

	e, err := newEntity("menu_item", "", request, rels, "item_type_id", "parent_id")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/menu-items", payload(e))
	if err != nil {
		return nil, fmt.Errorf("creating menu item: %w", err)
	}

	created, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeMenuItem(created)
}

// Update implements dato.MenuItemsClient.Update.
func (c *MenuItemsClient) Update(ctx context.Context, menuItemID string, request *dato.MenuItemUpdateRequest) (*dato.MenuItem, error) {
	var itemTypeID, parentID string

	if request.ItemTypeID != nil {
		itemTypeID = *request.ItemTypeID
	}

	if request.ParentID != nil {
		parentID = *request.ParentID
	}

	rels := menuItemRelationships(itemTypeID, parentID)

	e, err := newEntity("menu_item", menuItemID, request, rels, "item_type_id", "parent_id")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/menu-items/"+menuItemID, payload(e))
	if err != nil {
		return nil, fmt.Errorf("updating menu item: %w", err)
	}

	updated, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeMenuItem(updated)
}

// Delete implements dato.MenuItemsClient.Delete.
func (c *MenuItemsClient) Delete(ctx context.Context, menuItemID string) (*dato.MenuItem, error) {
	resp, err := c.httpClient.Delete(ctx, "/menu-items/"+menuItemID)
	if err != nil {
		return nil, fmt.Errorf("deleting menu item: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeMenuItem(e)
}
