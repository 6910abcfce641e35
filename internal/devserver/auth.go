package devserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"golang-shop-client/internal/models"
)

func (s *Server) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	user, ok := s.data.findUserByEmail(req.Email)
	if !ok || !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email, user.Roles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		Type:  "Bearer",
		ID:    user.ID,
		Email: user.Email,
		Roles: user.Roles,
	})
}

func (s *Server) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()

	if _, exists := s.data.findUserByEmail(req.Email); exists {
		c.JSON(http.StatusConflict, gin.H{"message": "Email is already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	now := time.Now().UTC()
	user := userRecord{
		User: models.User{
			ID:        s.data.nextUserID,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Roles:     []string{models.RoleUser},
			CreatedAt: now,
			UpdatedAt: now,
			IsActive:  true,
		},
		PasswordHash: string(hash),
	}
	s.data.nextUserID++
	s.data.users = append(s.data.users, user)

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful"})
}
