package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart/novamart-api/controllers"
	"github.com/novamart/novamart-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	api := server.Group("/api")
	{
		api.POST("/orders", controllers.CreateOrder)
		api.GET("/orders/:userId", controllers.GetOrdersByUserId)
	}

	admin := server.Group("/api/admin", middlewares.RequireAdmin())
	{
		admin.PATCH("/orders/:orderId/status", controllers.UpdateOrderStatus)
	}
}
