package devserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"golang-shop-client/internal/models"
)

func (s *Server) ListMyOrders(c *gin.Context) {
	page, size, _, _ := pageParams(c)
	userID := getUserID(c)

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	var mine []models.Order
	for i := len(s.data.orders) - 1; i >= 0; i-- { // newest first
		if s.data.orders[i].UserID == userID {
			mine = append(mine, s.data.orders[i])
		}
	}
	c.JSON(http.StatusOK, paginate(mine, page, size))
}

func (s *Server) CreateOrder(c *gin.Context) {
	var req models.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	claims := getClaims(c)

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	now := time.Now().UTC()
	order := models.Order{
		ID:        s.data.nextOrderID,
		UserID:    claims.UserID,
		UserEmail: claims.Email,
		Status:    models.OrderStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Orders are priced server-side from the current catalog.
	for _, item := range req.Items {
		product, ok := s.data.findProduct(item.ProductID)
		if !ok || !product.IsActive {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown product in order"})
			return
		}
		if product.StockQuantity < item.Quantity {
			c.JSON(http.StatusConflict, gin.H{"message": "Insufficient stock for " + product.Name})
			return
		}
		subtotal := product.Price * float64(item.Quantity)
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			ID:          s.data.nextItemID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
			Subtotal:    subtotal,
		})
		s.data.nextItemID++
		order.TotalAmount += subtotal
	}

	for _, item := range order.OrderItems {
		if product, ok := s.data.findProduct(item.ProductID); ok {
			product.StockQuantity -= item.Quantity
		}
	}

	s.data.nextOrderID++
	s.data.orders = append(s.data.orders, order)

	c.JSON(http.StatusCreated, order)
}

func (s *Server) AdminListOrders(c *gin.Context) {
	page, size, _, _ := pageParams(c)

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	all := make([]models.Order, 0, len(s.data.orders))
	for i := len(s.data.orders) - 1; i >= 0; i-- {
		all = append(all, s.data.orders[i])
	}
	c.JSON(http.StatusOK, paginate(all, page, size))
}

func (s *Server) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
		return
	}

	var req models.OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown order status"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	for i := range s.data.orders {
		if s.data.orders[i].ID == id {
			s.data.orders[i].Status = req.Status
			s.data.orders[i].UpdatedAt = time.Now().UTC()
			c.JSON(http.StatusOK, s.data.orders[i])
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
}
