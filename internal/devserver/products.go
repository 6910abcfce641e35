package devserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"golang-shop-client/internal/models"
)

func pageParams(c *gin.Context) (page, size int, sortKey, direction string) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "20"))
	return page, size, c.Query("sort"), c.Query("direction")
}

func (s *Server) ListProducts(c *gin.Context) {
	page, size, sortKey, direction := pageParams(c)

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	var filtered []models.Product
	for _, product := range s.data.products {
		if !product.IsActive {
			continue
		}
		if v := c.Query("categoryId"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil || product.CategoryID != id {
				continue
			}
		}
		if v := c.Query("minPrice"); v != "" {
			min, err := strconv.ParseFloat(v, 64)
			if err != nil || product.Price < min {
				continue
			}
		}
		if v := c.Query("maxPrice"); v != "" {
			max, err := strconv.ParseFloat(v, 64)
			if err != nil || product.Price > max {
				continue
			}
		}
		if v := c.Query("name"); v != "" {
			if !strings.Contains(strings.ToLower(product.Name), strings.ToLower(v)) {
				continue
			}
		}
		filtered = append(filtered, product)
	}

	sortProducts(filtered, sortKey, direction)
	c.JSON(http.StatusOK, paginate(filtered, page, size))
}

func (s *Server) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	product, ok := s.data.findProduct(id)
	if !ok || !product.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) AdminListProducts(c *gin.Context) {
	page, size, sortKey, direction := pageParams(c)

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	all := make([]models.Product, len(s.data.products))
	copy(all, s.data.products)
	sortProducts(all, sortKey, direction)
	c.JSON(http.StatusOK, paginate(all, page, size))
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req models.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	categoryName := s.data.categoryName(req.CategoryID)
	if categoryName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown category"})
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := time.Now().UTC()
	product := models.Product{
		ID:            s.data.nextProductID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Currency:      req.Currency,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
		CategoryID:    req.CategoryID,
		CategoryName:  categoryName,
		CreatedAt:     now,
		UpdatedAt:     now,
		IsActive:      active,
	}
	s.data.nextProductID++
	s.data.products = append(s.data.products, product)

	c.JSON(http.StatusCreated, product)
}

func (s *Server) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	var req models.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	product, ok := s.data.findProduct(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Currency != nil {
		product.Currency = *req.Currency
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.CategoryID != nil {
		name := s.data.categoryName(*req.CategoryID)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown category"})
			return
		}
		product.CategoryID = *req.CategoryID
		product.CategoryName = name
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.UpdatedAt = time.Now().UTC()

	c.JSON(http.StatusOK, product)
}

func (s *Server) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	for i := range s.data.products {
		if s.data.products[i].ID == id {
			s.data.products = append(s.data.products[:i], s.data.products[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
}

func (s *Server) ListCategories(c *gin.Context) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	categories := make([]models.Category, len(s.data.categories))
	copy(categories, s.data.categories)
	for i := range categories {
		count := 0
		for _, product := range s.data.products {
			if product.CategoryID == categories[i].ID && product.IsActive {
				count++
			}
		}
		categories[i].ProductCount = count
	}
	c.JSON(http.StatusOK, categories)
}

func (s *Server) GetCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	for _, category := range s.data.categories {
		if category.ID == id {
			c.JSON(http.StatusOK, category)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
}
