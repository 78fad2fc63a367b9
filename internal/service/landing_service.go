package service

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/nihonga/admin-console/internal/utils"
	"github.com/nihonga/admin-console/pkg/storefront"
)

// HeroView is a hero slide with its image URL resolved.
type HeroView struct {
	storefront.HeroImage
	ImageURL string `json:"imageUrl"`
}

// LandingState is the landing screen's current curation.
type LandingState struct {
	Heros       []HeroView              `json:"heros"`
	Collections []storefront.Collection `json:"collections"`
	BestSellers []storefront.Product    `json:"bestSellers"`
}

// LandingService owns the landing-page curation: the hero carousel and the
// featured-collection and best-seller lists. Both curated lists are ordered;
// display order is whatever order entries were added in.
//
// Updates to the backend singleton are read-modify-write with no version
// check: two operators editing concurrently silently overwrite each other
// (last writer wins). Known limitation, the backend offers no revision token.
type LandingService struct {
	client *storefront.Client

	mu          sync.Mutex
	heros       []storefront.HeroImage
	collections []storefront.Collection
	bestSellers []storefront.Product
}

// NewLandingService constructs a LandingService.
func NewLandingService(client *storefront.Client) *LandingService {
	return &LandingService{client: client}
}

// Refresh loads the hero carousel and the saved curation lists.
func (s *LandingService) Refresh(ctx context.Context) error {
	heros, err := s.client.ListHeros(ctx)
	if err != nil {
		return err
	}
	landing, err := s.client.GetLanding(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.heros = heros
	s.collections = landing.Collections
	s.bestSellers = landing.BestSellers
	s.mu.Unlock()
	return nil
}

// UploadHero uploads a carousel image and appends the created record locally.
// No refetch: the backend returns the complete record.
func (s *LandingService) UploadHero(ctx context.Context, filename string, content []byte) (*storefront.HeroImage, error) {
	if len(content) == 0 {
		return nil, utils.ErrMissingFile
	}
	hero, err := s.client.CreateHero(ctx, filename, content)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.heros = append(s.heros, *hero)
	s.mu.Unlock()
	return hero, nil
}

// DeleteHero removes a carousel image, dropping it locally once the backend
// confirms.
func (s *LandingService) DeleteHero(ctx context.Context, id string) error {
	if err := s.client.DeleteHero(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.heros = slices.DeleteFunc(s.heros, func(h storefront.HeroImage) bool { return h.ID == id })
	s.mu.Unlock()
	return nil
}

// AddCollection features a collection. Adding one already present is a no-op:
// the curated list is a set over ids, kept in insertion order.
func (s *LandingService) AddCollection(ctx context.Context, collection storefront.Collection) error {
	s.mu.Lock()
	if slices.ContainsFunc(s.collections, func(c storefront.Collection) bool { return c.ID == collection.ID }) {
		s.mu.Unlock()
		return nil
	}
	previous := s.collections
	s.collections = append(slices.Clone(s.collections), collection)
	ids := collectionIDs(s.collections)
	s.mu.Unlock()

	if err := s.client.SetLandingCollections(ctx, ids); err != nil {
		s.rollbackCollections(previous, err)
		return err
	}
	return nil
}

// RemoveCollection unfeatures a collection.
func (s *LandingService) RemoveCollection(ctx context.Context, id string) error {
	s.mu.Lock()
	previous := s.collections
	s.collections = slices.DeleteFunc(slices.Clone(s.collections), func(c storefront.Collection) bool { return c.ID == id })
	ids := collectionIDs(s.collections)
	s.mu.Unlock()

	if err := s.client.SetLandingCollections(ctx, ids); err != nil {
		s.rollbackCollections(previous, err)
		return err
	}
	return nil
}

// AddBestSeller features a product; duplicates by id are ignored.
func (s *LandingService) AddBestSeller(ctx context.Context, product storefront.Product) error {
	s.mu.Lock()
	if slices.ContainsFunc(s.bestSellers, func(p storefront.Product) bool { return p.ID == product.ID }) {
		s.mu.Unlock()
		return nil
	}
	previous := s.bestSellers
	s.bestSellers = append(slices.Clone(s.bestSellers), product)
	ids := productIDs(s.bestSellers)
	s.mu.Unlock()

	if err := s.client.SetLandingBestSellers(ctx, ids); err != nil {
		s.rollbackBestSellers(previous, err)
		return err
	}
	return nil
}

// RemoveBestSeller unfeatures a product.
func (s *LandingService) RemoveBestSeller(ctx context.Context, id string) error {
	s.mu.Lock()
	previous := s.bestSellers
	s.bestSellers = slices.DeleteFunc(slices.Clone(s.bestSellers), func(p storefront.Product) bool { return p.ID == id })
	ids := productIDs(s.bestSellers)
	s.mu.Unlock()

	if err := s.client.SetLandingBestSellers(ctx, ids); err != nil {
		s.rollbackBestSellers(previous, err)
		return err
	}
	return nil
}

// State returns the current curation with resolved hero image URLs.
func (s *LandingService) State() LandingState {
	s.mu.Lock()
	defer s.mu.Unlock()

	heros := make([]HeroView, 0, len(s.heros))
	for _, h := range s.heros {
		heros = append(heros, HeroView{HeroImage: h, ImageURL: s.client.ImageURL(h.Image)})
	}
	return LandingState{
		Heros:       heros,
		Collections: slices.Clone(s.collections),
		BestSellers: slices.Clone(s.bestSellers),
	}
}

func (s *LandingService) rollbackCollections(previous []storefront.Collection, err error) {
	log.Error().Err(err).Msg("landing collections update failed, rolling back")
	s.mu.Lock()
	s.collections = previous
	s.mu.Unlock()
}

func (s *LandingService) rollbackBestSellers(previous []storefront.Product, err error) {
	log.Error().Err(err).Msg("landing best sellers update failed, rolling back")
	s.mu.Lock()
	s.bestSellers = previous
	s.mu.Unlock()
}

func collectionIDs(collections []storefront.Collection) []string {
	ids := make([]string, 0, len(collections))
	for _, c := range collections {
		ids = append(ids, c.ID)
	}
	return ids
}

func productIDs(products []storefront.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
