package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/datocms-community/datocms-mcp/internal/http"
	"github.com/datocms-community/datocms-mcp/pkg/dato"
)

// UploadsClient implements dato.UploadsClient.
type UploadsClient struct {
	httpClient *http.Client
}

// NewUploadsClient creates a new uploads client.
func NewUploadsClient(httpClient *http.Client) *UploadsClient {
	return &UploadsClient{httpClient: httpClient}
}

func decodeUpload(e *entity) (*dato.Upload, error) {
	var upload dato.Upload
	if err := e.decodeAttributes(&upload); err != nil {
		return nil, err
	}

	upload.ID = e.ID

	return &upload, nil
}

// List implements dato.UploadsClient.List.
func (c *UploadsClient) List(ctx context.Context, params *dato.QueryParams) (*dato.UploadPage, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, "/uploads", query)
	if err != nil {
		return nil, fmt.Errorf("listing uploads: %w", err)
	}

	entities, total, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	uploads := make([]dato.Upload, 0, len(entities))

	for i := range entities {
		upload, err := decodeUpload(&entities[i])
		if err != nil {
			return nil, err
		}

		uploads = append(uploads, *upload)
	}

	return &dato.UploadPage{Data: uploads, TotalCount: total}, nil
}

// Get implements dato.UploadsClient.Get.
func (c *UploadsClient) Get(ctx context.Context, uploadID string) (*dato.Upload, error) {
	resp, err := c.httpClient.Get(ctx, "/uploads/"+uploadID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting upload: %w", err)
	}

	e, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeUpload(e)
}

// Update implements dato.UploadsClient.Update.
func (c *UploadsClient) Update(ctx context.Context, uploadID string, request *dato.UploadUpdateRequest) (*dato.Upload, error) {
	e, err := newEntity("upload", uploadID, request, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/uploads/"+uploadID, payload(e))
	if err != nil {
		return nil, fmt.Errorf("updating upload: %w", err)
	}

	updated, err := decodeOne(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeUpload(updated)
}

// Delete implements dato.UploadsClient.Delete.
func (c *UploadsClient) Delete(ctx context.Context, uploadID string) error {
	if _, err := c.httpClient.Delete(ctx, "/uploads/"+uploadID); err != nil {
		return fmt.Errorf("deleting upload: %w", err)
	}

	return nil
}

// References implements dato.UploadsClient.References. It returns the
// records that embed the upload.
func (c *UploadsClient) References(ctx context.Context, uploadID string) ([]dato.Item, error) {
	resp, err := c.httpClient.Get(ctx, "/uploads/"+uploadID+"/references", nil)
	if err != nil {
		return nil, fmt.Errorf("listing upload references: %w", err)
	}

	entities, _, err := decodeMany(resp.Body)
	if err != nil {
		return nil, err
	}

	return decodeItems(entities)
}
