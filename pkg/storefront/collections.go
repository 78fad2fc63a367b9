package storefront

import (
	"context"
	"net/http"
)

// ListCollections retrieves all collections.
func (c *Client) ListCollections(ctx context.Context) ([]Collection, error) {
	var collections []Collection
	if err := c.doJSON(ctx, http.MethodGet, "/collections/getall", nil, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

// CreateCollection creates a collection from a multipart form (name + image).
func (c *Client) CreateCollection(ctx context.Context, form *Form) (*Collection, error) {
	var created Collection
	if err := c.doMultipart(ctx, http.MethodPost, "/collections/post", form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCollection updates a collection from a multipart form.
func (c *Client) UpdateCollection(ctx context.Context, id string, form *Form) (*Collection, error) {
	var updated Collection
	if err := c.doMultipart(ctx, http.MethodPut, "/collections/update/"+id, form, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCollection removes a collection. Products keep a dangling reference;
// the backend does not cascade.
func (c *Client) DeleteCollection(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/collections/delete/"+id, nil, nil)
}
