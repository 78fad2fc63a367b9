package service

import (
	"context"

	"github.com/nihonga/admin-console/internal/controller"
	"github.com/nihonga/admin-console/internal/form"
	"github.com/nihonga/admin-console/pkg/storefront"
)

// AdminService owns the admin-accounts screen. Accounts are created and
// deleted, never edited; the password travels only on creation.
type AdminService struct {
	list *controller.List[storefront.Admin, storefront.CreateAdminRequest]
}

// NewAdminService constructs an AdminService.
func NewAdminService(client *storefront.Client) *AdminService {
	return &AdminService{
		list: controller.NewList("admins", controller.Ops[storefront.Admin, storefront.CreateAdminRequest]{
			List: client.ListAdmins,
			Create: func(ctx context.Context, payload storefront.CreateAdminRequest) error {
				_, err := client.CreateAdmin(ctx, payload)
				return err
			},
			Delete: client.DeleteAdmin,
			ID:     func(a storefront.Admin) string { return a.ID },
		}),
	}
}

// AddSchema describes the add-admin modal. All fields are required.
func (s *AdminService) AddSchema() form.Schema {
	return form.Schema{
		Title: "Add New Admin",
		Fields: []form.Field{
			{Label: "Name", Name: "name", Kind: form.Text, Required: true, Placeholder: "Name"},
			{Label: "Email", Name: "email", Kind: form.Email, Required: true, Placeholder: "Email"},
			{Label: "Password", Name: "password", Kind: form.Password, Required: true, Placeholder: "Password"},
		},
	}
}

// Refresh refetches the admin list.
func (s *AdminService) Refresh(ctx context.Context) error {
	return s.list.Refresh(ctx)
}

// Add validates a submission, creates the account and refetches.
func (s *AdminService) Add(ctx context.Context, sub form.Submission) error {
	if err := s.AddSchema().Validate(sub); err != nil {
		return err
	}
	return s.list.Add(ctx, storefront.CreateAdminRequest{
		Name:     sub.Values["name"],
		Email:    sub.Values["email"],
		Password: sub.Values["password"],
	})
}

// Remove deletes an admin account optimistically.
func (s *AdminService) Remove(ctx context.Context, id string) error {
	return s.list.Remove(ctx, id)
}

// State returns the cached admin accounts.
func (s *AdminService) State() ([]storefront.Admin, bool, error) {
	return s.list.State()
}
