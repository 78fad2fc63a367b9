package storefront

import (
	"context"
	"net/http"
)

// ListCarts retrieves every customer cart in bulk for the analysis screen.
func (c *Client) ListCarts(ctx context.Context) ([]Cart, error) {
	var carts []Cart
	if err := c.doJSON(ctx, http.MethodGet, "/cart/getall", nil, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

// ListWishlists retrieves every customer together with their wishlist.
func (c *Client) ListWishlists(ctx context.Context) ([]WishlistUser, error) {
	var users []WishlistUser
	if err := c.doJSON(ctx, http.MethodGet, "/user/wishlist/getall", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
