// Package devserver is a self-contained implementation of the shop REST
// contract against seeded in-memory data. It exists as an offline
// development target and as the backend the client integration tests run
// against; it is not a specification of the production backend.
package devserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"golang-shop-client/pkg/auth"
)

type Server struct {
	router     *gin.Engine
	data       *dataset
	jwtManager *auth.JWTManager
}

func New(jwtSecret string, expiryHours int) *Server {
	s := &Server{
		data:       seedDataset(),
		jwtManager: auth.NewJWTManager(jwtSecret, expiryHours),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "shop-devserver",
		})
	})

	api := router.Group("/api")

	api.POST("/auth/login", s.Login)
	api.POST("/auth/register", s.Register)

	api.GET("/products", s.ListProducts)
	api.GET("/products/:id", s.GetProduct)
	api.GET("/categories", s.ListCategories)
	api.GET("/categories/:id", s.GetCategory)

	user := api.Group("/user", s.AuthRequired())
	user.GET("/me", s.Me)
	user.PUT("/me", s.UpdateMe)
	user.GET("/orders", s.ListMyOrders)
	user.POST("/orders", s.CreateOrder)

	admin := api.Group("/admin", s.AuthRequired(), s.AdminRequired())
	admin.GET("/products", s.AdminListProducts)
	admin.POST("/products", s.CreateProduct)
	admin.PUT("/products/:id", s.UpdateProduct)
	admin.DELETE("/products/:id", s.DeleteProduct)
	admin.GET("/orders", s.AdminListOrders)
	admin.PUT("/orders/:id/status", s.UpdateOrderStatus)
	admin.GET("/users", s.AdminListUsers)
	admin.GET("/users/:id", s.AdminGetUser)
	admin.PUT("/users/:id", s.AdminUpdateUser)
	admin.DELETE("/users/:id", s.DeactivateUser)

	s.router = router
	return s
}

// Handler exposes the router for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(port string) error {
	return s.router.Run(":" + port)
}
