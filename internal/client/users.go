package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// UsersClient implements dato.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

func decodeUser(e *entity) (*dato.User, error) {
	var user dato.User
	if err := e.decodeAttributes(&user); err != nil {
		return nil, err
	}

	user.ID = e.ID
	user.RoleID = e.relID("role")

	return &user, nil
}

// List implements dato.UsersClient.List.
func (c *UsersClient) List(ctx context.Context) ([]dato.User, error) {
	resp, err := c.httpClient.Get(ctx, "/users", nil)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	entities, _, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	users := make([]dato.User, 0, len(entities))

	for i := range entities {
		user, err := decodeUser(&entities[i])
		if err != nil {
			return nil, err
		}

		users = append(users, *user)
	}

	return users, nil
}

// Get implements dato.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID string) (*dato.User, error) {
	resp, err := c.httpClient.Get(ctx, "/users/"+userID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeUser(e)
}

// Update implements dato.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, userID string, request *dato.UserUpdateRequest) (*dato.User, error) {
	var rels map[string]relationship
	if request.RoleID != nil {
		rels = map[string]relationship{"role": toOne("role", *request.RoleID)}
	}

	e, err := newEntity("user", userID, request, rels, "role_id")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/users/"+userID, payload(e))
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	updated, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeUser(updated)
}

// Delete implements dato.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, userID string) (*dato.User, error) {
	resp, err := c.httpClient.Delete(ctx, "/users/"+userID)
	if err != nil {
		return nil, fmt.Errorf("deleting user: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeUser(e)
}
