package devserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"golang-shop-client/internal/models"
)

func (s *Server) Me(c *gin.Context) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	user, ok := s.data.findUser(getUserID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user.User)
}

func (s *Server) UpdateMe(c *gin.Context) {
	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	user, ok := s.data.findUser(getUserID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
			return
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	c.JSON(http.StatusOK, user.User)
}

func (s *Server) AdminListUsers(c *gin.Context) {
	page, size, _, _ := pageParams(c)

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	users := make([]models.User, 0, len(s.data.users))
	for _, u := range s.data.users {
		users = append(users, u.User)
	}
	c.JSON(http.StatusOK, paginate(users, page, size))
}

func (s *Server) AdminGetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	user, ok := s.data.findUser(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user.User)
}

func (s *Server) AdminUpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	var req models.AdminUserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	user, ok := s.data.findUser(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Roles != nil {
		user.Roles = req.Roles
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now().UTC()

	c.JSON(http.StatusOK, user.User)
}

func (s *Server) DeactivateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	user, ok := s.data.findUser(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	user.IsActive = false
	user.UpdatedAt = time.Now().UTC()

	c.JSON(http.StatusOK, gin.H{"message": "User deactivated"})
}
