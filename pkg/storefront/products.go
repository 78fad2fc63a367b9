package storefront

import (
	"context"
	"net/http"
	"net/url"
)

// ListProducts retrieves all products with populated collection references.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.doJSON(ctx, http.MethodGet, "/products/getall", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListProductsByCollection retrieves the products belonging to one collection.
func (c *Client) ListProductsByCollection(ctx context.Context, collectionID string) ([]Product, error) {
	var products []Product
	path := "/products?collection=" + url.QueryEscape(collectionID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct creates a product from a multipart form (text fields plus
// heroImage and showcaseImages attachments).
func (c *Client) CreateProduct(ctx context.Context, form *Form) (*Product, error) {
	var created Product
	if err := c.doMultipart(ctx, http.MethodPost, "/products/post", form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct updates a product from a multipart form.
func (c *Client) UpdateProduct(ctx context.Context, id string, form *Form) (*Product, error) {
	var updated Product
	if err := c.doMultipart(ctx, http.MethodPut, "/products/update/"+id, form, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/products/delete/"+id, nil, nil)
}
