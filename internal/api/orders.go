package api

import (
	"context"
	"fmt"

	"golang-shop-client/internal/models"
)

// OrderClient wraps /user/orders and the admin-only /admin/orders
// endpoints.
type OrderClient struct {
	client *Client
}

func NewOrderClient(client *Client) *OrderClient {
	return &OrderClient{client: client}
}

func (o *OrderClient) ListMine(ctx context.Context, page PageRequest) (*models.Page[models.Order], error) {
	var result models.Page[models.Order]
	if err := o.client.get(ctx, "/user/orders", page.query(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create places an order from the given items. The backend prices the
// items itself; the client only sends product IDs and quantities.
func (o *OrderClient) Create(ctx context.Context, req *models.OrderCreateRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var order models.Order
	if err := o.client.post(ctx, "/user/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (o *OrderClient) AdminList(ctx context.Context, page PageRequest) (*models.Page[models.Order], error) {
	var result models.Page[models.Order]
	if err := o.client.get(ctx, "/admin/orders", page.query(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (o *OrderClient) UpdateStatus(ctx context.Context, id int64, req *models.OrderStatusUpdateRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var order models.Order
	if err := o.client.put(ctx, fmt.Sprintf("/admin/orders/%d/status", id), req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
