package devserver

import (
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"golang-shop-client/internal/models"
)

// dataset is the in-memory backing data. All access goes through its
// methods under the mutex.
type dataset struct {
	mu sync.Mutex

	users      []userRecord
	products   []models.Product
	categories []models.Category
	orders     []models.Order

	nextUserID    int64
	nextProductID int64
	nextOrderID   int64
	nextItemID    int64
}

type userRecord struct {
	models.User
	PasswordHash string
}

func seedDataset() *dataset {
	now := time.Now().UTC()
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	userHash, _ := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)

	d := &dataset{
		users: []userRecord{
			{
				User: models.User{
					ID: 1, Email: "admin@shop.local", FirstName: "Ada", LastName: "Admin",
					Roles: []string{models.RoleUser, models.RoleAdmin},
					CreatedAt: now, UpdatedAt: now, IsActive: true,
				},
				PasswordHash: string(adminHash),
			},
			{
				User: models.User{
					ID: 2, Email: "user@shop.local", FirstName: "Uma", LastName: "User",
					Roles: []string{models.RoleUser},
					CreatedAt: now, UpdatedAt: now, IsActive: true,
				},
				PasswordHash: string(userHash),
			},
		},
		categories: []models.Category{
			{ID: 1, Name: "Electronics", Description: "Gadgets and devices"},
			{ID: 2, Name: "Books", Description: "Print and digital"},
			{ID: 3, Name: "Home", Description: "Household goods"},
		},
		nextUserID:    3,
		nextProductID: 1,
		nextOrderID:   1,
		nextItemID:    1,
	}

	seed := []struct {
		name     string
		price    float64
		stock    int
		category int64
	}{
		{"Wireless Mouse", 24.90, 120, 1},
		{"Mechanical Keyboard", 89.00, 45, 1},
		{"USB-C Hub", 39.50, 80, 1},
		{"Noise-Canceling Headphones", 199.00, 25, 1},
		{"Go Programming Book", 42.00, 60, 2},
		{"Distributed Systems Book", 55.00, 30, 2},
		{"Ceramic Mug", 12.00, 200, 3},
		{"Desk Lamp", 34.00, 70, 3},
		{"Standing Desk Mat", 49.00, 40, 3},
		{"Webcam", 65.00, 55, 1},
		{"Monitor Stand", 29.00, 90, 3},
		{"Novel Anthology", 18.50, 75, 2},
		{"Smart Speaker", 79.00, 35, 1},
		{"Cookbook", 27.00, 50, 2},
		{"Throw Blanket", 22.00, 110, 3},
	}
	for _, s := range seed {
		d.products = append(d.products, models.Product{
			ID:            d.nextProductID,
			Name:          s.name,
			Description:   s.name + " from the demo catalog",
			Price:         s.price,
			Currency:      "USD",
			StockQuantity: s.stock,
			CategoryID:    s.category,
			CategoryName:  d.categoryName(s.category),
			CreatedAt:     now,
			UpdatedAt:     now,
			IsActive:      true,
		})
		d.nextProductID++
	}

	return d
}

func (d *dataset) categoryName(id int64) string {
	for _, c := range d.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func (d *dataset) findUserByEmail(email string) (*userRecord, bool) {
	for i := range d.users {
		if strings.EqualFold(d.users[i].Email, email) {
			return &d.users[i], true
		}
	}
	return nil, false
}

func (d *dataset) findUser(id int64) (*userRecord, bool) {
	for i := range d.users {
		if d.users[i].ID == id {
			return &d.users[i], true
		}
	}
	return nil, false
}

func (d *dataset) findProduct(id int64) (*models.Product, bool) {
	for i := range d.products {
		if d.products[i].ID == id {
			return &d.products[i], true
		}
	}
	return nil, false
}

// sortProducts orders a copy of the given slice by the supported sort
// keys. Unknown keys leave the input order untouched.
func sortProducts(products []models.Product, key, direction string) {
	desc := direction == "desc"
	var less func(a, b models.Product) bool
	switch key {
	case "name":
		less = func(a, b models.Product) bool { return a.Name < b.Name }
	case "price":
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case "createdAt":
		less = func(a, b models.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}

// paginate slices one 0-based page out of items and wraps it in the page
// envelope the real backend uses.
func paginate[T any](items []T, page, size int) models.Page[T] {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	total := len(items)
	totalPages := (total + size - 1) / size

	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	content := make([]T, end-start)
	copy(content, items[start:end])

	return models.Page[T]{
		Content:       content,
		Number:        page,
		Size:          size,
		TotalPages:    totalPages,
		TotalElements: int64(total),
	}
}
