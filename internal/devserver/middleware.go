package devserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"golang-shop-client/internal/models"
	"golang-shop-client/pkg/auth"
)

// AuthRequired validates the bearer token and stores the caller's
// identity on the request context.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := s.jwtManager.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("roles", claims.Roles)
		c.Next()
	}
}

// AdminRequired gates admin endpoints on the ROLE_ADMIN role. Must run
// after AuthRequired.
func (s *Server) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, exists := c.Get("roles")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"message": "Role information missing"})
			c.Abort()
			return
		}

		for _, role := range roles.([]string) {
			if role == models.RoleAdmin {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
		c.Abort()
	}
}

func getUserID(c *gin.Context) int64 {
	if userID, exists := c.Get("user_id"); exists {
		return userID.(int64)
	}
	return 0
}

func getClaims(c *gin.Context) *auth.Claims {
	id := getUserID(c)
	if id == 0 {
		return nil
	}
	email, _ := c.Get("email")
	roles, _ := c.Get("roles")
	return &auth.Claims{
		UserID: id,
		Email:  email.(string),
		Roles:  roles.([]string),
	}
}
