package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart/novamart-api/controllers"
	"github.com/novamart/novamart-api/middlewares"
)

func ProductRoutes(server *gin.Engine) {
	api := server.Group("/api")
	{
		api.GET("/products", controllers.GetProducts)
		api.GET("/products/:id", controllers.GetProduct)
		api.POST("/products", middlewares.RequireAdmin(), controllers.CreateProduct)
		api.POST("/products/:id/images", middlewares.RequireAdmin(), controllers.UploadProductImages)
	}
}
