package service

import (
	"context"
	"sync"

	"github.com/nihonga/admin-console/internal/controller"
	"github.com/nihonga/admin-console/internal/utils"
	"github.com/nihonga/admin-console/pkg/storefront"
)

// Stock status labels derived from a product's stock count. Never persisted;
// recomputed on every read.
const (
	StatusInStock    = "In Stock"
	StatusLowStock   = "Low Stock"
	StatusOutOfStock = "Out of Stock"
)

// StockStatus derives the status label for a stock count. Zero is out of
// stock, anything up to and including threshold is low.
func StockStatus(stock, threshold int) string {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock <= threshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// StockView is one stock row annotated with its derived status.
type StockView struct {
	storefront.StockItem
	Status string `json:"status"`
}

// StockService owns the stock screen: the searchable stock list, quantity
// updates and the aggregate summary.
type StockService struct {
	client    *storefront.Client
	threshold int

	mu     sync.Mutex
	search string

	list *controller.List[storefront.StockItem, struct{}]
}

// NewStockService constructs a StockService.
func NewStockService(client *storefront.Client, lowStockThreshold int) *StockService {
	s := &StockService{client: client, threshold: lowStockThreshold}
	s.list = controller.NewList("stock", controller.Ops[storefront.StockItem, struct{}]{
		List: func(ctx context.Context) ([]storefront.StockItem, error) {
			return client.ListStock(ctx, s.currentSearch())
		},
		ID: func(item storefront.StockItem) string { return item.ID },
	})
	return s
}

func (s *StockService) currentSearch() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// Refresh refetches the stock list with the current search filter.
func (s *StockService) Refresh(ctx context.Context) error {
	return s.list.Refresh(ctx)
}

// Search sets the server-side search filter and refetches.
func (s *StockService) Search(ctx context.Context, query string) error {
	s.mu.Lock()
	s.search = query
	s.mu.Unlock()
	return s.list.Refresh(ctx)
}

// SetStock sets one product's quantity, then refetches: the backend derives
// fields from stock so local state must come from it.
func (s *StockService) SetStock(ctx context.Context, productID string, stock int) error {
	if stock < 0 {
		return utils.ErrInvalidStock
	}
	if err := s.client.UpdateStock(ctx, productID, stock); err != nil {
		return err
	}
	return s.list.Refresh(ctx)
}

// BulkSetStock applies several quantity updates at once, then refetches.
func (s *StockService) BulkSetStock(ctx context.Context, updates []storefront.StockUpdate) error {
	for _, u := range updates {
		if u.Stock < 0 {
			return utils.ErrInvalidStock
		}
	}
	if err := s.client.BulkUpdateStock(ctx, updates); err != nil {
		return err
	}
	return s.list.Refresh(ctx)
}

// Summary fetches the backend's aggregate counts by status.
func (s *StockService) Summary(ctx context.Context) (*storefront.StockSummary, error) {
	return s.client.StockSummary(ctx)
}

// State returns the stock rows annotated with derived status labels.
func (s *StockService) State() ([]StockView, bool, error) {
	items, loading, err := s.list.State()
	views := make([]StockView, 0, len(items))
	for _, item := range items {
		views = append(views, StockView{
			StockItem: item,
			Status:    StockStatus(item.Stock, s.threshold),
		})
	}
	return views, loading, err
}
