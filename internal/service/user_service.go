package service

import (
	"context"
	"strings"

	"github.com/nihonga/admin-console/internal/controller"
	"github.com/nihonga/admin-console/internal/form"
	"github.com/nihonga/admin-console/pkg/storefront"
)

// UserService owns the customer-profiles screen. Profiles are backend-owned;
// the console only lists and updates them.
type UserService struct {
	list *controller.List[storefront.User, map[string]any]
}

// NewUserService constructs a UserService.
func NewUserService(client *storefront.Client) *UserService {
	return &UserService{
		list: controller.NewList("users", controller.Ops[storefront.User, map[string]any]{
			List: client.ListUsers,
			Update: func(ctx context.Context, id string, payload map[string]any) error {
				_, err := client.UpdateUser(ctx, id, payload)
				return err
			},
			ID: func(u storefront.User) string { return u.ID },
		}),
	}
}

// EditSchema describes the edit-user modal. Every field is optional; absent
// values are not sent.
func (s *UserService) EditSchema() form.Schema {
	return form.Schema{
		Title: "Edit User",
		Fields: []form.Field{
			{Label: "First Name", Name: "firstName", Kind: form.Text},
			{Label: "Last Name", Name: "lastName", Kind: form.Text},
			{Label: "Email", Name: "email", Kind: form.Email},
			{Label: "Phone", Name: "phone", Kind: form.Text},
			{Label: "Address", Name: "address", Kind: form.Textarea},
			{Label: "City", Name: "city", Kind: form.Text},
			{Label: "State", Name: "state", Kind: form.Text},
			{Label: "Pincode", Name: "pincode", Kind: form.Text},
		},
	}
}

// Refresh refetches the user list.
func (s *UserService) Refresh(ctx context.Context) error {
	return s.list.Refresh(ctx)
}

// Edit validates a submission, updates the profile and refetches.
func (s *UserService) Edit(ctx context.Context, id string, sub form.Submission) error {
	schema := s.EditSchema()
	if err := schema.Validate(sub); err != nil {
		return err
	}
	payload, err := schema.JSONPayload(sub)
	if err != nil {
		return err
	}
	return s.list.Edit(ctx, id, payload)
}

// State returns the cached users, optionally filtered by a case-insensitive
// match on name or phone.
func (s *UserService) State(search string) ([]storefront.User, bool, error) {
	users, loading, err := s.list.State()
	if search == "" {
		return users, loading, err
	}
	needle := strings.ToLower(search)
	filtered := users[:0:0]
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.FirstName), needle) ||
			strings.Contains(strings.ToLower(u.LastName), needle) ||
			strings.Contains(u.Phone, search) {
			filtered = append(filtered, u)
		}
	}
	return filtered, loading, err
}
