package storefront

import (
	"context"
	"net/http"
)

// ListOrders retrieves all orders.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.doJSON(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder retrieves one order by id. A missing order surfaces as an APIError
// with status 404 (see IsNotFound).
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	var order Order
	if err := c.doJSON(ctx, http.MethodGet, "/orders/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus sets an order's status. The backend appends the matching
// statusHistory entry itself.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"orderStatus": status}
	return c.doJSON(ctx, http.MethodPut, "/orders/"+id+"/status", body, nil)
}

// CancelOrder cancels an order via the dedicated endpoint.
func (c *Client) CancelOrder(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPut, "/orders/"+id+"/cancel", nil, nil)
}

// RefundOrder refunds an order's payment.
func (c *Client) RefundOrder(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPut, "/orders/"+id+"/refund", nil, nil)
}

// InvoiceURL returns the backend URL of an order's invoice document.
func (c *Client) InvoiceURL(id string) string {
	return c.baseURL + "/orders/" + id + "/invoice"
}
