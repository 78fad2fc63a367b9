package service

import (
	"context"

	"github.com/nihonga/admin-console/pkg/storefront"
)

// CartReport is a derived, read-only projection over every customer cart.
// Not persisted anywhere; recomputed on each load.
type CartReport struct {
	TotalCarts int               `json:"totalCarts"`
	TotalItems int               `json:"totalItems"`
	Carts      []storefront.Cart `json:"carts"`
}

// WishlistReport aggregates every customer's wishlist.
type WishlistReport struct {
	TotalUsers      int                       `json:"totalUsers"`
	TotalWishlisted int                       `json:"totalWishlisted"`
	Users           []storefront.WishlistUser `json:"users"`
}

// AnalyticsService builds the cart and wishlist analysis screens from bulk
// fetches.
type AnalyticsService struct {
	client *storefront.Client
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(client *storefront.Client) *AnalyticsService {
	return &AnalyticsService{client: client}
}

// Carts fetches all carts and sums their item quantities.
func (s *AnalyticsService) Carts(ctx context.Context) (*CartReport, error) {
	carts, err := s.client.ListCarts(ctx)
	if err != nil {
		return nil, err
	}
	report := &CartReport{TotalCarts: len(carts), Carts: carts}
	for _, cart := range carts {
		for _, item := range cart.Items {
			report.TotalItems += item.Quantity
		}
	}
	return report, nil
}

// Wishlists fetches all customers with their wishlists and counts entries.
func (s *AnalyticsService) Wishlists(ctx context.Context) (*WishlistReport, error) {
	users, err := s.client.ListWishlists(ctx)
	if err != nil {
		return nil, err
	}
	report := &WishlistReport{TotalUsers: len(users), Users: users}
	for _, u := range users {
		report.TotalWishlisted += len(u.Wishlist)
	}
	return report, nil
}
