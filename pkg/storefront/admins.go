package storefront

import (
	"context"
	"net/http"
)

// CreateAdminRequest is the JSON payload for creating an admin account.
// Password is write-only and never echoed back.
type CreateAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ListAdmins retrieves all admin accounts.
func (c *Client) ListAdmins(ctx context.Context) ([]Admin, error) {
	var admins []Admin
	if err := c.doJSON(ctx, http.MethodGet, "/admin/getall", nil, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

// CreateAdmin creates an admin account.
func (c *Client) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*Admin, error) {
	var created Admin
	if err := c.doJSON(ctx, http.MethodPost, "/admin/post", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteAdmin removes an admin account.
func (c *Client) DeleteAdmin(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/admin/delete/"+id, nil, nil)
}
