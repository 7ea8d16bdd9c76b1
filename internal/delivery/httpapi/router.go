package httpapi

import (
	"net/http"

	"github.com/campuskart/campus-market-service/internal/security"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every handler into one gin engine. Register and
// login are the only unauthenticated API routes.
func NewRouter(
	tokens *security.TokenManager,
	userHandler *UserHandler,
	productHandler *ProductHandler,
	cartHandler *CartHandler,
	orderHandler *OrderHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	users := api.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", userHandler.Login)

	authorized := api.Group("", AuthMiddleware(tokens))

	authorized.GET("/users/me", userHandler.GetCurrentUser)
	authorized.PUT("/users/update", userHandler.UpdateProfile)

	products := authorized.Group("/products")
	products.POST("/add-product", productHandler.AddProduct)
	products.POST("/get-all-products", productHandler.ListProducts)
	products.GET("/get-product-by-id/:id", productHandler.GetProductByID)
	products.DELETE("/delete/:id", productHandler.DeleteProduct)

	cart := authorized.Group("/cart")
	cart.POST("/add", cartHandler.AddToCart)
	cart.POST("/remove", cartHandler.RemoveFromCart)
	cart.GET("/:id", cartHandler.GetCart)

	orders := authorized.Group("/orders")
	orders.POST("/place-order", orderHandler.PlaceOrder)
	orders.GET("/seller-pending-orders/:sellerId", orderHandler.GetSellerPendingOrders)
	orders.POST("/verify-complete-order", orderHandler.VerifyAndCompleteOrder)
	orders.GET("/order-history/:id", orderHandler.GetOrderHistory)

	return router
}
