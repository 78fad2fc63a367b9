package service

import (
	"context"
	"encoding/json"
	"maps"

	"github.com/nihonga/admin-console/internal/controller"
	"github.com/nihonga/admin-console/internal/form"
	"github.com/nihonga/admin-console/pkg/storefront"
)

// ProductView is a product annotated with its derived stock status and
// resolved image URLs for rendering.
type ProductView struct {
	storefront.Product
	StockStatus  string `json:"stockStatus"`
	HeroImageURL string `json:"heroImageUrl"`
}

// ProductService owns the product screen: the product list and the
// schema-driven add/edit/delete flow.
type ProductService struct {
	client    *storefront.Client
	threshold int
	list      *controller.List[storefront.Product, *storefront.Form]
}

// NewProductService constructs a ProductService.
func NewProductService(client *storefront.Client, lowStockThreshold int) *ProductService {
	return &ProductService{
		client:    client,
		threshold: lowStockThreshold,
		list: controller.NewList("products", controller.Ops[storefront.Product, *storefront.Form]{
			List: client.ListProducts,
			Create: func(ctx context.Context, payload *storefront.Form) error {
				_, err := client.CreateProduct(ctx, payload)
				return err
			},
			Update: func(ctx context.Context, id string, payload *storefront.Form) error {
				_, err := client.UpdateProduct(ctx, id, payload)
				return err
			},
			Delete: client.DeleteProduct,
			ID:     func(p storefront.Product) string { return p.ID },
		}),
	}
}

// AddSchema describes the add-product modal. Collection options come from the
// currently loaded collections.
func (s *ProductService) AddSchema(collections []storefront.Collection) form.Schema {
	return form.Schema{
		Title: "Add Product",
		Fields: []form.Field{
			{Label: "Name", Name: "name", Kind: form.Text, Required: true},
			{Label: "Description", Name: "description", Kind: form.Textarea},
			{Label: "Price", Name: "price", Kind: form.Number, Required: true},
			{Label: "Sizes", Name: "sizes", Kind: form.Text, Placeholder: "Comma-separated (S,M,L)"},
			{Label: "Hero Image", Name: "heroImage", Kind: form.File},
			{Label: "Showcase Images", Name: "showcaseImages", Kind: form.File, Multiple: true},
			{Label: "Collection", Name: "collection", Kind: form.Select, Options: collectionOptions(collections)},
		},
	}
}

// EditSchema describes the edit-product modal; unlike add it exposes stock.
func (s *ProductService) EditSchema(collections []storefront.Collection) form.Schema {
	schema := s.AddSchema(collections)
	schema.Title = "Edit Product"
	fields := make([]form.Field, 0, len(schema.Fields)+1)
	for _, f := range schema.Fields {
		f.Required = false
		fields = append(fields, f)
		if f.Name == "price" {
			fields = append(fields, form.Field{Label: "Stock", Name: "stock", Kind: form.Number})
		}
	}
	schema.Fields = fields
	return schema
}

func collectionOptions(collections []storefront.Collection) []form.Option {
	opts := make([]form.Option, 0, len(collections))
	for _, c := range collections {
		opts = append(opts, form.Option{Label: c.Name, Value: c.ID})
	}
	return opts
}

// payload shapes a modal submission into the multipart form the backend
// expects. The sizes field travels as a JSON-encoded array, not raw CSV.
func (s *ProductService) payload(schema form.Schema, sub form.Submission) (*storefront.Form, error) {
	if raw := sub.Values["sizes"]; raw != "" {
		encoded, err := json.Marshal(form.SplitList(raw))
		if err != nil {
			return nil, err
		}
		values := maps.Clone(sub.Values)
		values["sizes"] = string(encoded)
		sub.Values = values
	}
	return schema.MultipartPayload(sub)
}

// Refresh refetches the product list.
func (s *ProductService) Refresh(ctx context.Context) error {
	return s.list.Refresh(ctx)
}

// Add validates a submission against the add schema, creates the product and
// refetches.
func (s *ProductService) Add(ctx context.Context, sub form.Submission) error {
	schema := s.AddSchema(nil)
	if err := schema.Validate(sub); err != nil {
		return err
	}
	payload, err := s.payload(schema, sub)
	if err != nil {
		return err
	}
	return s.list.Add(ctx, payload)
}

// Edit validates a submission against the edit schema, updates the product
// and refetches.
func (s *ProductService) Edit(ctx context.Context, id string, sub form.Submission) error {
	schema := s.EditSchema(nil)
	if err := schema.Validate(sub); err != nil {
		return err
	}
	payload, err := s.payload(schema, sub)
	if err != nil {
		return err
	}
	return s.list.Edit(ctx, id, payload)
}

// Remove deletes a product optimistically.
func (s *ProductService) Remove(ctx context.Context, id string) error {
	return s.list.Remove(ctx, id)
}

// Find looks a product up in the cached list.
func (s *ProductService) Find(id string) (storefront.Product, bool) {
	for _, p := range s.list.Items() {
		if p.ID == id {
			return p, true
		}
	}
	return storefront.Product{}, false
}

// ByCollection fetches the products of one collection straight from the
// backend; it does not touch the screen's cached list.
func (s *ProductService) ByCollection(ctx context.Context, collectionID string) ([]storefront.Product, error) {
	return s.client.ListProductsByCollection(ctx, collectionID)
}

// Items returns the cached products unannotated.
func (s *ProductService) Items() []storefront.Product {
	return s.list.Items()
}

// State returns the product views with derived stock status and image URLs.
func (s *ProductService) State() ([]ProductView, bool, error) {
	items, loading, err := s.list.State()
	views := make([]ProductView, 0, len(items))
	for _, p := range items {
		views = append(views, ProductView{
			Product:      p,
			StockStatus:  StockStatus(p.Stock, s.threshold),
			HeroImageURL: s.client.ImageURL(p.HeroImage),
		})
	}
	return views, loading, err
}
