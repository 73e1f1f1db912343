package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// AccessTokensClient implements dato.AccessTokensClient.
type AccessTokensClient struct {
	httpClient *http.Client
}

// NewAccessTokensClient creates a new access tokens client.
func NewAccessTokensClient(httpClient *http.Client) *AccessTokensClient {
	return &AccessTokensClient{httpClient: httpClient}
}

func decodeAccessToken(e *entity) (*dato.AccessToken, error) {
	var token dato.AccessToken
	if err := e.decodeAttributes(&token); err != nil {
		return nil, err
	}

	token.ID = e.ID
	token.RoleID = e.relID("role")

	return &token, nil
}

// List implements dato.AccessTokensClient.List. The token value is never
// present in list responses.
func (c *AccessTokensClient) List(ctx context.Context) ([]dato.AccessToken, error) {
	resp, err := c.httpClient.Get(ctx, "/access_tokens", nil)
	if err != nil {
		return nil, fmt.Errorf("listing access tokens: %w", err)
	}

	entities, _, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	tokens := make([]dato.AccessToken, 0, len(entities))

	for i := range entities {
		token, err := decodeAccessToken(&entities[i])
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, *token)
	}

	return tokens, nil
}

// Get implements dato.AccessTokensClient.Get.
func (c *AccessTokensClient) Get(ctx context.Context, tokenID string) (*dato.AccessToken, error) {
	resp, err := c.httpClient.Get(ctx, "/access_tokens/"+tokenID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting access token: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeAccessToken(e)
}

// Create implements dato.AccessTokensClient.Create. The response is the only
// place the plaintext token value ever appears.
func (c *AccessTokensClient) Create(ctx context.Context, request *dato.AccessTokenCreateRequest) (*dato.AccessToken, error) {
	var rels map[string]relationship
	if request.RoleID != "" {
		rels = map[string]relationship{"role": toOne("role", request.RoleID)}
	}

	e, err := newEntity("access_token", "", request, rels, "role_id")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/access_tokens", payload(e))
	if err != nil {
		return nil, fmt.Errorf("creating access token: %w", err)
	}

	created, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeAccessToken(created)
}

// Update implements dato.AccessTokensClient.Update.
func (c *AccessTokensClient) Update(ctx context.Context, tokenID string, request *dato.AccessTokenUpdateRequest) (*dato.AccessToken, error) {
	var rels map[string]relationship
	if request.RoleID != nil {
		rels = map[string]relationship{"role": toOne("role", *request.RoleID)}
	}

	e, err := newEntity("access_token", tokenID, request, rels, "role_id")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/access_tokens/"+tokenID, payload(e))
	if err != nil {
		return nil, fmt.Errorf("updating access token: %w", err)
	}

	updated, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeAccessToken(updated)
}

// Regenerate implements dato.AccessTokensClient.Regenerate. The previous
// token value is invalidated and the response carries the new one.
func (c *AccessTokensClient) Regenerate(ctx context.Context, tokenID string) (*dato.AccessToken, error) {
	resp, err := c.httpClient.Post(ctx, "/access_tokens/"+tokenID+"/regenerate_token", nil)
	if err != nil {
		return nil, fmt.Errorf("regenerating access token: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeAccessToken(e)
}

// Delete implements dato.AccessTokensClient.Delete.
func (c *AccessTokensClient) Delete(ctx context.Context, tokenID string) (*dato.AccessToken, error) {
	resp, err := c.httpClient.Delete(ctx, "/access_tokens/"+tokenID)
	if err != nil {
		return nil, fmt.Errorf("deleting access token: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeAccessToken(e)
}
