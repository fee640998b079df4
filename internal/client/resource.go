package client

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/disamze/eduplatform-frontend/internal/models"
)

// CreateResourceRequest is the multipart payload for uploading a resource.
type CreateResourceRequest struct {
	Title       string
	Description string
	Type        models.ResourceType
	FileName    string
	File        io.Reader
}

// Resources lists resources, optionally filtered by type and a free-text
// search term. Empty values are omitted from the query entirely.
func (c *Client) Resources(ctx context.Context, typ models.ResourceType, search string) ([]models.Resource, error) {
	params := url.Values{}
	if typ != "" {
		params.Set("type", string(typ))
	}
	if search != "" {
		params.Set("search", search)
	}
	path := "/resources"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var resources []models.Resource
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// Resource fetches a single record, used to resolve the stored filename
// before a download.
func (c *Client) Resource(ctx context.Context, id string) (*models.Resource, error) {
	var resource models.Resource
	if err := c.doJSON(ctx, http.MethodGet, "/resources/"+id, nil, &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

// CreateResource uploads a file with its metadata.
func (c *Client) CreateResource(ctx context.Context, req CreateResourceRequest) (*models.Resource, error) {
	form := NewMultipartForm().
		Field("title", req.Title).
		Field("description", req.Description).
		Field("type", string(req.Type)).
		File("file", req.FileName, req.File)
	var resource models.Resource
	if err := c.doMultipart(ctx, http.MethodPost, "/resources", form, &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

// DeleteResource removes a resource by id.
func (c *Client) DeleteResource(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/resources/"+id, nil, nil)
}
