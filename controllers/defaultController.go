package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to NovaMart API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

ORDERS
- POST "/api/orders" - Place a new order
- GET "/api/orders/{userId}" - Get orders for a specific user
- PATCH "/api/admin/orders/{orderId}/status" - Update order status (admin)

PRODUCTS
- GET "/api/products" - Get all products
- GET "/api/products/{id}" - Get product by ID
- POST "/api/products" - Create new product (admin)
- POST "/api/products/{id}/images" - Upload product images (admin)

MISC
- GET "/api/ping" - Health check`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

func Ping(ctx *gin.Context) {
	message := os.Getenv("PING_MESSAGE")
	if message == "" {
		message = "ping"
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}
