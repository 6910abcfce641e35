package api

import (
	"context"
	"fmt"
	"strconv"

	"golang-shop-client/internal/models"
)

// ProductFilter narrows the public product listing. Zero-valued fields
// are left out of the query string entirely.
type ProductFilter struct {
	CategoryID int64
	MinPrice   float64
	MaxPrice   float64
	Name       string
}

// ProductClient wraps /products and the admin-only /admin/products
// endpoints.
type ProductClient struct {
	client *Client
}

func NewProductClient(client *Client) *ProductClient {
	return &ProductClient{client: client}
}

func (p *ProductClient) List(ctx context.Context, page PageRequest, filter ProductFilter) (*models.Page[models.Product], error) {
	q := page.query()
	if filter.CategoryID != 0 {
		q.Set("categoryId", strconv.FormatInt(filter.CategoryID, 10))
	}
	if filter.MinPrice != 0 {
		q.Set("minPrice", strconv.FormatFloat(filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice != 0 {
		q.Set("maxPrice", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}
	if filter.Name != "" {
		q.Set("name", filter.Name)
	}

	var result models.Page[models.Product]
	if err := p.client.get(ctx, "/products", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (p *ProductClient) Get(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := p.client.get(ctx, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *ProductClient) AdminList(ctx context.Context, page PageRequest) (*models.Page[models.Product], error) {
	var result models.Page[models.Product]
	if err := p.client.get(ctx, "/admin/products", page.query(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (p *ProductClient) Create(ctx context.Context, req *models.ProductCreateRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var product models.Product
	if err := p.client.post(ctx, "/admin/products", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *ProductClient) Update(ctx context.Context, id int64, req *models.ProductUpdateRequest) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var product models.Product
	if err := p.client.put(ctx, fmt.Sprintf("/admin/products/%d", id), req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *ProductClient) Delete(ctx context.Context, id int64) error {
	return p.client.delete(ctx, fmt.Sprintf("/admin/products/%d", id))
}
