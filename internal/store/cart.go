// Package store holds the client-side state containers: the persisted
// cart, the session, and one async container per backend resource.
package store

import (
	"log"
	"sync"

	"golang-shop-client/internal/models"
	"golang-shop-client/internal/storage"
)

// Cart is the locally persisted shopping cart. Lines are unique by
// product ID and keep insertion order. TotalItems and TotalAmount are
// cache values recomputed from the lines on every mutation; the lines are
// the only source of truth and the only thing persisted.
type Cart struct {
	mu    sync.Mutex
	store storage.Store

	lines       []models.CartLine
	totalItems  int
	totalAmount float64
}

// NewCart hydrates the cart from storage. A missing or unreadable entry
// starts the cart empty; hydration never fails.
func NewCart(store storage.Store) *Cart {
	c := &Cart{store: store}
	var lines []models.CartLine
	if err := store.Get(storage.KeyCartItems, &lines); err == nil {
		c.lines = lines
	}
	c.recompute()
	return c
}

// Add merges quantity into an existing line for the product or appends a
// new one. A non-positive quantity is a silent no-op.
func (c *Cart) Add(product models.Product, quantity int) {
	if quantity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			c.lines[i].Quantity += quantity
			c.commit()
			return
		}
	}

	c.lines = append(c.lines, models.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Currency:  product.Currency,
		ImageURL:  product.ImageURL,
		Quantity:  quantity,
	})
	c.commit()
}

// Remove deletes the line for productID if present.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.commit()
			return
		}
	}
}

// SetQuantity sets the quantity of an existing line. A quantity of zero
// or less removes the line; a line is never stored at a non-positive
// quantity.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			if quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				c.lines[i].Quantity = quantity
			}
			c.commit()
			return
		}
	}
}

// Clear empties the cart. Used by explicit user action and after a
// successful checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	c.commit()
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalItems
}

func (c *Cart) TotalAmount() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalAmount
}

// OrderRequest builds the checkout payload from the current lines.
func (c *Cart) OrderRequest() *models.OrderCreateRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	req := &models.OrderCreateRequest{}
	for _, line := range c.lines {
		req.Items = append(req.Items, models.OrderItemRequest{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	return req
}

// commit recomputes totals and persists the lines. Persistence is
// best-effort: a storage failure is logged and the in-memory state stays
// authoritative. Callers must hold c.mu.
func (c *Cart) commit() {
	c.recompute()
	if err := c.store.Set(storage.KeyCartItems, c.lines); err != nil {
		log.Printf("Failed to persist cart: %v", err)
	}
}

func (c *Cart) recompute() {
	c.totalItems = 0
	c.totalAmount = 0
	for _, line := range c.lines {
		c.totalItems += line.Quantity
		c.totalAmount += line.UnitPrice * float64(line.Quantity)
	}
}
