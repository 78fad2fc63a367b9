package storefront

import (
	"context"
	"net/http"
)

// ListUsers retrieves all customer profiles.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.doJSON(ctx, http.MethodGet, "/user/getall", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser updates a customer profile with a plain key-value JSON body.
func (c *Client) UpdateUser(ctx context.Context, id string, fields map[string]any) (*User, error) {
	var updated User
	if err := c.doJSON(ctx, http.MethodPut, "/user/update/"+id, fields, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
