package service

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/nihonga/admin-console/internal/controller"
	"github.com/nihonga/admin-console/internal/utils"
	"github.com/nihonga/admin-console/pkg/storefront"
)

// Canonical order status values. The backend historically mixed casing
// ("Cancelled" vs "cancelled"); the console writes lowercase and compares
// case-insensitively.
const (
	OrderPlaced    = "placed"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Payment status values relevant to the refund action.
const (
	PaymentPaid     = "Paid"
	PaymentRefunded = "Refunded"
)

// OrderStatuses lists every status an operator may choose. Transitions are
// unconstrained: any status may follow any other.
func OrderStatuses() []string {
	return []string{OrderPlaced, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled}
}

// OrderActions reports which side-effecting transitions the detail view may
// offer for the order's current state.
type OrderActions struct {
	// CanCancel is false once the order is cancelled: the cancel action
	// must disappear rather than fail.
	CanCancel bool `json:"canCancel"`
	// CanRefund depends on the payment status only, not the order status.
	CanRefund bool `json:"canRefund"`
}

// OrderService owns the orders screen: the searchable order list plus one
// workflow per opened order detail.
type OrderService struct {
	client *storefront.Client
	list   *controller.List[storefront.Order, struct{}]

	mu    sync.Mutex
	flows map[string]*OrderWorkflow
}

// NewOrderService constructs an OrderService.
func NewOrderService(client *storefront.Client) *OrderService {
	return &OrderService{
		client: client,
		list: controller.NewList("orders", controller.Ops[storefront.Order, struct{}]{
			List: client.ListOrders,
			ID:   func(o storefront.Order) string { return o.ID },
		}),
	}
}

// Refresh refetches the order list.
func (s *OrderService) Refresh(ctx context.Context) error {
	return s.list.Refresh(ctx)
}

// State returns the cached orders, optionally filtered by a case-insensitive
// match on customer name or order id.
func (s *OrderService) State(search string) ([]storefront.Order, bool, error) {
	orders, loading, err := s.list.State()
	if search == "" {
		return orders, loading, err
	}
	needle := strings.ToLower(search)
	filtered := orders[:0:0]
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.CustomerName), needle) ||
			strings.Contains(strings.ToLower(o.ID), needle) {
			filtered = append(filtered, o)
		}
	}
	return filtered, loading, err
}

// Workflow returns the workflow for one order, loading it from the backend on
// first access and refreshing its snapshot on subsequent ones. A missing
// order surfaces as utils.ErrOrderNotFound.
func (s *OrderService) Workflow(ctx context.Context, id string) (*OrderWorkflow, error) {
	s.mu.Lock()
	w, ok := s.flows[id]
	s.mu.Unlock()

	if ok {
		w.reload(ctx)
		return w, nil
	}

	order, err := s.client.GetOrder(ctx, id)
	if err != nil {
		if storefront.IsNotFound(err) {
			return nil, utils.ErrOrderNotFound
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok = s.flows[id]; ok {
		return w, nil
	}
	if s.flows == nil {
		s.flows = make(map[string]*OrderWorkflow)
	}
	w = &OrderWorkflow{client: s.client, order: *order}
	s.flows[id] = w
	return w, nil
}

// OrderWorkflow is the state machine over one order's status field. At most
// one transition may be in flight at a time; the gate is always released when
// the call finishes, success or not.
type OrderWorkflow struct {
	client *storefront.Client

	mu       sync.Mutex
	order    storefront.Order
	updating bool
}

// Order returns the current local snapshot of the order.
func (w *OrderWorkflow) Order() storefront.Order {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.order
}

// Actions reports the transitions currently offered.
func (w *OrderWorkflow) Actions() OrderActions {
	w.mu.Lock()
	defer w.mu.Unlock()
	return OrderActions{
		CanCancel: !strings.EqualFold(w.order.OrderStatus, OrderCancelled),
		CanRefund: strings.EqualFold(w.order.PaymentStatus, PaymentPaid),
	}
}

// Timeline returns the status history exactly as the backend recorded it; the
// console never resorts it.
func (w *OrderWorkflow) Timeline() []storefront.StatusHistoryEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.order.StatusHistory)
}

// InvoiceURL returns the backend invoice link for this order.
func (w *OrderWorkflow) InvoiceURL() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.client.InvoiceURL(w.order.ID)
}

// ChangeStatus performs an operator-chosen status change. Any status may be
// set from any other. On failure local state is left untouched.
func (w *OrderWorkflow) ChangeStatus(ctx context.Context, status string) error {
	if !slices.Contains(OrderStatuses(), strings.ToLower(status)) {
		return utils.ErrInvalidStatus
	}
	status = strings.ToLower(status)

	release, err := w.acquire()
	if err != nil {
		return err
	}
	defer release()

	if err := w.client.UpdateOrderStatus(ctx, w.orderID(), status); err != nil {
		return err
	}
	w.mu.Lock()
	w.order.OrderStatus = status
	w.mu.Unlock()
	return nil
}

// Cancel cancels the order via the dedicated endpoint. Callers must not offer
// it once the order is cancelled; a late call fails fast without a request.
func (w *OrderWorkflow) Cancel(ctx context.Context) error {
	if !w.Actions().CanCancel {
		return utils.ErrAlreadyCancelled
	}
	release, err := w.acquire()
	if err != nil {
		return err
	}
	defer release()

	if err := w.client.CancelOrder(ctx, w.orderID()); err != nil {
		return err
	}
	w.mu.Lock()
	w.order.OrderStatus = OrderCancelled
	w.mu.Unlock()
	return nil
}

// Refund marks the payment refunded. It is gated on the payment status only,
// independent of the order status.
func (w *OrderWorkflow) Refund(ctx context.Context) error {
	if !w.Actions().CanRefund {
		return utils.ErrNotRefundable
	}
	release, err := w.acquire()
	if err != nil {
		return err
	}
	defer release()

	if err := w.client.RefundOrder(ctx, w.orderID()); err != nil {
		return err
	}
	w.mu.Lock()
	w.order.PaymentStatus = PaymentRefunded
	w.mu.Unlock()
	return nil
}

// acquire claims the single in-flight transition slot.
func (w *OrderWorkflow) acquire() (func(), error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.updating {
		return nil, utils.ErrUpdateInFlight
	}
	w.updating = true
	return func() {
		w.mu.Lock()
		w.updating = false
		w.mu.Unlock()
	}, nil
}

func (w *OrderWorkflow) orderID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.order.ID
}

// reload replaces the local snapshot with fresh backend state, unless a
// transition is mid-flight (its optimistic patch must not be stomped).
func (w *OrderWorkflow) reload(ctx context.Context) {
	w.mu.Lock()
	if w.updating {
		w.mu.Unlock()
		return
	}
	id := w.order.ID
	w.mu.Unlock()

	order, err := w.client.GetOrder(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("order_id", id).Msg("order reload failed, serving cached snapshot")
		return
	}

	w.mu.Lock()
	if !w.updating {
		w.order = *order
	}
	w.mu.Unlock()
}
