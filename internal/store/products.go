package store

import (
	"context"
	"sync"

	"golang-shop-client/internal/api"
	"golang-shop-client/internal/models"
)

// Products holds the latest page of the catalog (or the admin listing;
// they share the container, since no view shows both at once) plus the
// currently viewed product.
type Products struct {
	ListState[models.Product]

	client *api.ProductClient

	curMu   sync.Mutex
	current *models.Product
}

func NewProducts(client *api.ProductClient) *Products {
	return &Products{client: client}
}

// FetchList loads one page of the public catalog, replacing content and
// pagination wholesale.
func (p *Products) FetchList(ctx context.Context, page api.PageRequest, filter api.ProductFilter) error {
	p.begin()
	result, err := p.client.List(ctx, page, filter)
	if err != nil {
		p.reject(err, "Failed to fetch products")
		return err
	}
	p.fulfill(result)
	return nil
}

// FetchAdminList loads one page of the admin product listing.
func (p *Products) FetchAdminList(ctx context.Context, page api.PageRequest) error {
	p.begin()
	result, err := p.client.AdminList(ctx, page)
	if err != nil {
		p.reject(err, "Failed to fetch admin products")
		return err
	}
	p.fulfill(result)
	return nil
}

// FetchByID loads a single product into the detail slot.
func (p *Products) FetchByID(ctx context.Context, id int64) error {
	p.begin()
	product, err := p.client.Get(ctx, id)
	if err != nil {
		p.reject(err, "Failed to fetch product")
		return err
	}
	p.curMu.Lock()
	p.current = product
	p.curMu.Unlock()
	p.settle()
	return nil
}

// Create posts a new product and prepends it to the held list without a
// refetch.
func (p *Products) Create(ctx context.Context, req *models.ProductCreateRequest) (*models.Product, error) {
	p.begin()
	product, err := p.client.Create(ctx, req)
	if err != nil {
		p.reject(err, "Failed to create product")
		return nil, err
	}
	p.prepend(*product)
	return product, nil
}

// Update puts the change and patches the held list and the detail slot in
// place.
func (p *Products) Update(ctx context.Context, id int64, req *models.ProductUpdateRequest) (*models.Product, error) {
	p.begin()
	product, err := p.client.Update(ctx, id, req)
	if err != nil {
		p.reject(err, "Failed to update product")
		return nil, err
	}
	p.replace(func(item models.Product) bool { return item.ID == id }, *product)
	p.curMu.Lock()
	if p.current != nil && p.current.ID == id {
		p.current = product
	}
	p.curMu.Unlock()
	return product, nil
}

// Delete removes the product from the held list without a refetch.
func (p *Products) Delete(ctx context.Context, id int64) error {
	p.begin()
	if err := p.client.Delete(ctx, id); err != nil {
		p.reject(err, "Failed to delete product")
		return err
	}
	p.removeIf(func(item models.Product) bool { return item.ID == id })
	p.curMu.Lock()
	if p.current != nil && p.current.ID == id {
		p.current = nil
	}
	p.curMu.Unlock()
	return nil
}

// Current returns the product loaded by FetchByID, or nil.
func (p *Products) Current() *models.Product {
	p.curMu.Lock()
	defer p.curMu.Unlock()
	if p.current == nil {
		return nil
	}
	product := *p.current
	return &product
}

// ClearCurrent drops the detail slot, e.g. when leaving the detail view.
func (p *Products) ClearCurrent() {
	p.curMu.Lock()
	p.current = nil
	p.curMu.Unlock()
}
