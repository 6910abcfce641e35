package store

import (
	"context"

	"golang-shop-client/internal/api"
	"golang-shop-client/internal/models"
)

// Orders is the order slice, covering both the user's order history and
// the admin order listing.
type Orders struct {
	ListState[models.Order]

	client *api.OrderClient
}

func NewOrders(client *api.OrderClient) *Orders {
	return &Orders{client: client}
}

// FetchMine loads one page of the caller's order history.
func (o *Orders) FetchMine(ctx context.Context, page api.PageRequest) error {
	o.begin()
	result, err := o.client.ListMine(ctx, page)
	if err != nil {
		o.reject(err, "Failed to fetch orders")
		return err
	}
	o.fulfill(result)
	return nil
}

// FetchAdminList loads one page of all orders.
func (o *Orders) FetchAdminList(ctx context.Context, page api.PageRequest) error {
	o.begin()
	result, err := o.client.AdminList(ctx, page)
	if err != nil {
		o.reject(err, "Failed to fetch admin orders")
		return err
	}
	o.fulfill(result)
	return nil
}

// Create places an order and prepends it to the held list.
func (o *Orders) Create(ctx context.Context, req *models.OrderCreateRequest) (*models.Order, error) {
	o.begin()
	order, err := o.client.Create(ctx, req)
	if err != nil {
		o.reject(err, "Failed to create order")
		return nil, err
	}
	o.prepend(*order)
	return order, nil
}

// UpdateStatus applies an admin status change to the held list without a
// refetch.
func (o *Orders) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	o.begin()
	order, err := o.client.UpdateStatus(ctx, id, &models.OrderStatusUpdateRequest{Status: status})
	if err != nil {
		o.reject(err, "Failed to update order status")
		return nil, err
	}
	o.replace(func(item models.Order) bool { return item.ID == id }, *order)
	return order, nil
}
