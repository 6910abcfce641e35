package api

import (
	"context"
	"fmt"

	"golang-shop-client/internal/models"
)

// CategoryClient wraps the /categories endpoints. The category list is
// small and unpaginated.
type CategoryClient struct {
	client *Client
}

func NewCategoryClient(client *Client) *CategoryClient {
	return &CategoryClient{client: client}
}

func (c *CategoryClient) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.client.get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *CategoryClient) Get(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := c.client.get(ctx, fmt.Sprintf("/categories/%d", id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
