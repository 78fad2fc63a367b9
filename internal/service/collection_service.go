package service

import (
	"context"

	"github.com/nihonga/admin-console/internal/controller"
	"github.com/nihonga/admin-console/internal/form"
	"github.com/nihonga/admin-console/pkg/storefront"
)

// CollectionView is a collection with its image URL resolved.
type CollectionView struct {
	storefront.Collection
	ImageURL string `json:"imageUrl"`
}

// CollectionService owns the collections screen.
type CollectionService struct {
	client *storefront.Client
	list   *controller.List[storefront.Collection, *storefront.Form]
}

// NewCollectionService constructs a CollectionService.
func NewCollectionService(client *storefront.Client) *CollectionService {
	return &CollectionService{
		client: client,
		list: controller.NewList("collections", controller.Ops[storefront.Collection, *storefront.Form]{
			List: client.ListCollections,
			Create: func(ctx context.Context, payload *storefront.Form) error {
				_, err := client.CreateCollection(ctx, payload)
				return err
			},
			Update: func(ctx context.Context, id string, payload *storefront.Form) error {
				_, err := client.UpdateCollection(ctx, id, payload)
				return err
			},
			Delete: client.DeleteCollection,
			ID:     func(c storefront.Collection) string { return c.ID },
		}),
	}
}

// AddSchema describes the add-collection modal.
func (s *CollectionService) AddSchema() form.Schema {
	return form.Schema{
		Title: "Add Collection",
		Fields: []form.Field{
			{Label: "Name", Name: "name", Kind: form.Text, Required: true, Placeholder: "Collection name"},
			{Label: "Image", Name: "image", Kind: form.File, Required: true},
		},
	}
}

// EditSchema describes the edit-collection modal. The image is optional here:
// leaving it empty keeps the existing one.
func (s *CollectionService) EditSchema() form.Schema {
	return form.Schema{
		Title: "Edit Collection",
		Fields: []form.Field{
			{Label: "Name", Name: "name", Kind: form.Text, Required: true},
			{Label: "Image", Name: "image", Kind: form.File},
		},
	}
}

// Refresh refetches the collection list.
func (s *CollectionService) Refresh(ctx context.Context) error {
	return s.list.Refresh(ctx)
}

// Add validates a submission, creates the collection and refetches.
func (s *CollectionService) Add(ctx context.Context, sub form.Submission) error {
	schema := s.AddSchema()
	if err := schema.Validate(sub); err != nil {
		return err
	}
	payload, err := schema.MultipartPayload(sub)
	if err != nil {
		return err
	}
	return s.list.Add(ctx, payload)
}

// Edit validates a submission, updates the collection and refetches.
func (s *CollectionService) Edit(ctx context.Context, id string, sub form.Submission) error {
	schema := s.EditSchema()
	if err := schema.Validate(sub); err != nil {
		return err
	}
	payload, err := schema.MultipartPayload(sub)
	if err != nil {
		return err
	}
	return s.list.Edit(ctx, id, payload)
}

// Remove deletes a collection optimistically. Products referencing it keep a
// dangling reference; the backend does not cascade.
func (s *CollectionService) Remove(ctx context.Context, id string) error {
	return s.list.Remove(ctx, id)
}

// Find looks a collection up in the cached list.
func (s *CollectionService) Find(id string) (storefront.Collection, bool) {
	for _, c := range s.list.Items() {
		if c.ID == id {
			return c, true
		}
	}
	return storefront.Collection{}, false
}

// Items returns the cached collections.
func (s *CollectionService) Items() []storefront.Collection {
	return s.list.Items()
}

// State returns the collection views with resolved image URLs.
func (s *CollectionService) State() ([]CollectionView, bool, error) {
	items, loading, err := s.list.State()
	views := make([]CollectionView, 0, len(items))
	for _, c := range items {
		views = append(views, CollectionView{
			Collection: c,
			ImageURL:   s.client.ImageURL(c.Image),
		})
	}
	return views, loading, err
}
