package storefront

import (
	"context"
	"net/http"
)

// GetLanding retrieves the landing-page curation singleton.
func (c *Client) GetLanding(ctx context.Context) (*LandingConfig, error) {
	var landing LandingConfig
	if err := c.doJSON(ctx, http.MethodGet, "/landing", nil, &landing); err != nil {
		return nil, err
	}
	return &landing, nil
}

// SetLandingCollections replaces the featured-collection id list. The slice
// order is the storefront display order.
func (c *Client) SetLandingCollections(ctx context.Context, collectionIDs []string) error {
	body := map[string][]string{"collections": collectionIDs}
	return c.doJSON(ctx, http.MethodPost, "/landing/collections", body, nil)
}

// SetLandingBestSellers replaces the best-seller product id list.
func (c *Client) SetLandingBestSellers(ctx context.Context, productIDs []string) error {
	body := map[string][]string{"bestSellers": productIDs}
	return c.doJSON(ctx, http.MethodPost, "/landing/bestsellers", body, nil)
}
