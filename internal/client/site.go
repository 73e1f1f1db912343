package client

import (
	"context"
	"fmt"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// SiteClient implements dato.SiteClient. The site is a singleton resource.
type SiteClient struct {
	httpClient *http.Client
}

// NewSiteClient creates a new site client.
func NewSiteClient(httpClient *http.Client) *SiteClient {
	return &SiteClient{httpClient: httpClient}
}

func decodeSite(e *entity) (*dato.Site, error) {
	var site dato.Site
	if err := e.decodeAttributes(&site); err != nil {
		return nil, err
	}

	site.ID = e.ID

	return &site, nil
}

// Get implements dato.SiteClient.Get.
func (c *SiteClient) Get(ctx context.Context) (*dato.Site, error) {
	resp, err := c.httpClient.Get(ctx, "/site", nil)
	if err != nil {
		return nil, fmt.Errorf("getting site: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeSite(e)
}

// Update implements dato.SiteClient.Update.
func (c *SiteClient) Update(ctx context.Context, request *dato.SiteUpdateRequest) (*dato.Site, error) {
	e, err := newEntity("site", "", request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/site", payload(e))
	if err != nil {
		return nil, fmt.Errorf("updating site: %w", err)
	}

	updated, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeSite(updated)
}
