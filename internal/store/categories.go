package store

import (
	"context"
	"sync"

	"golang-shop-client/internal/api"
	"golang-shop-client/internal/models"
)

// Categories is the category slice. The backend returns the full list
// unpaginated, so only the fetch lifecycle applies.
type Categories struct {
	mu     sync.Mutex
	client *api.CategoryClient

	status  Status
	content []models.Category
	err     string
}

func NewCategories(client *api.CategoryClient) *Categories {
	return &Categories{client: client}
}

func (c *Categories) Fetch(ctx context.Context) error {
	c.mu.Lock()
	c.status = StatusPending
	c.err = ""
	c.mu.Unlock()

	categories, err := c.client.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status = StatusRejected
		c.err = errMessage(err, "Failed to fetch categories")
		return err
	}
	c.status = StatusFulfilled
	c.content = categories
	return nil
}

func (c *Categories) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == "" {
		return StatusIdle
	}
	return c.status
}

func (c *Categories) Loading() bool {
	return c.Status() == StatusPending
}

func (c *Categories) Content() []models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Category, len(c.content))
	copy(out, c.content)
	return out
}

func (c *Categories) Error() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
