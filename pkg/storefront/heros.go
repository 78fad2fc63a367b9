package storefront

import (
	"context"
	"net/http"
)

// ListHeros retrieves all hero carousel images.
func (c *Client) ListHeros(ctx context.Context) ([]HeroImage, error) {
	var heros []HeroImage
	if err := c.doJSON(ctx, http.MethodGet, "/heros/getall", nil, &heros); err != nil {
		return nil, err
	}
	return heros, nil
}

// CreateHero uploads a hero image (multipart field "image") and returns the
// created record.
func (c *Client) CreateHero(ctx context.Context, filename string, content []byte) (*HeroImage, error) {
	form := NewForm().AddFile("image", filename, content)
	var created HeroImage
	if err := c.doMultipart(ctx, http.MethodPost, "/heros/post", form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteHero removes a hero image.
func (c *Client) DeleteHero(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/heros/"+id, nil, nil)
}
