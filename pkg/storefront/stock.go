package storefront

import (
	"context"
	"net/http"
	"net/url"
)

// ListStock retrieves the stock view, optionally filtered server-side.
func (c *Client) ListStock(ctx context.Context, search string) ([]StockItem, error) {
	var items []StockItem
	path := "/stock/getall?search=" + url.QueryEscape(search)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStock sets one product's stock quantity.
func (c *Client) UpdateStock(ctx context.Context, productID string, stock int) error {
	body := map[string]int{"stock": stock}
	return c.doJSON(ctx, http.MethodPut, "/stock/update/"+productID, body, nil)
}

// BulkUpdateStock sets stock quantities for several products at once.
func (c *Client) BulkUpdateStock(ctx context.Context, updates []StockUpdate) error {
	return c.doJSON(ctx, http.MethodPut, "/stock/bulk/update", updates, nil)
}

// StockSummary retrieves the backend's aggregate counts by stock status.
func (c *Client) StockSummary(ctx context.Context) (*StockSummary, error) {
	var summary StockSummary
	if err := c.doJSON(ctx, http.MethodGet, "/stock/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
