package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/novamart/novamart-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.GET("/api/ping", controllers.Ping)
}
