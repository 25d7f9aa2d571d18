package routes

import (
	"budget_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("", handlers.APIInfo)
	rg.GET("/ping", handlers.Ping)
}
