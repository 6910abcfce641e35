package models

import "errors"

// Request bodies, one struct per operation. Update variants use pointer
// fields so that unset values are omitted from the JSON body instead of
// being sent as zero values.

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

func (r *RegisterRequest) Validate() error {
	if r.Email == "" || r.FirstName == "" || r.LastName == "" {
		return errors.New("email, first name and last name are required")
	}
	if len(r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

type ProductCreateRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Currency      string  `json:"currency" binding:"required"`
	StockQuantity int     `json:"stockQuantity" binding:"gte=0"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	CategoryID    int64   `json:"categoryId" binding:"required"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

func (r *ProductCreateRequest) Validate() error {
	if r.Name == "" {
		return errors.New("product name is required")
	}
	if r.Price <= 0 {
		return errors.New("price must be positive")
	}
	if r.Currency == "" {
		return errors.New("currency is required")
	}
	if r.CategoryID == 0 {
		return errors.New("category is required")
	}
	return nil
}

type ProductUpdateRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	Currency      *string  `json:"currency,omitempty"`
	StockQuantity *int     `json:"stockQuantity,omitempty"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
	CategoryID    *int64   `json:"categoryId,omitempty"`
	IsActive      *bool    `json:"isActive,omitempty"`
}

func (r *ProductUpdateRequest) Validate() error {
	if r.Price != nil && *r.Price <= 0 {
		return errors.New("price must be positive")
	}
	if r.StockQuantity != nil && *r.StockQuantity < 0 {
		return errors.New("stock quantity cannot be negative")
	}
	return nil
}

type OrderItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

type OrderCreateRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1"`
}

func (r *OrderCreateRequest) Validate() error {
	if len(r.Items) == 0 {
		return errors.New("order must contain at least one item")
	}
	for _, item := range r.Items {
		if item.Quantity <= 0 {
			return errors.New("item quantity must be positive")
		}
	}
	return nil
}

type OrderStatusUpdateRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
}

func (r *OrderStatusUpdateRequest) Validate() error {
	if !r.Status.Valid() {
		return errors.New("unknown order status")
	}
	return nil
}

type UserUpdateRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Password  *string `json:"password,omitempty"`
}

func (r *UserUpdateRequest) Validate() error {
	if r.Password != nil && len(*r.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

// AdminUserUpdateRequest is the admin-side variant; it can additionally
// change roles and the active flag.
type AdminUserUpdateRequest struct {
	FirstName *string  `json:"firstName,omitempty"`
	LastName  *string  `json:"lastName,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	IsActive  *bool    `json:"isActive,omitempty"`
}

func (r *AdminUserUpdateRequest) Validate() error {
	for _, role := range r.Roles {
		if role != RoleUser && role != RoleAdmin {
			return errors.New("unknown role: " + role)
		}
	}
	return nil
}
