package handlers

import (
	"net/http"

	"budget_tracker/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// APIInfo godoc
// @Summary      Service banner
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.APIInfoResponse
// @Router       / [get]
func APIInfo(c *gin.Context) {
	c.JSON(http.StatusOK, response.APIInfoResponse{Message: "预算管理系统 API", Status: "running"})
}

// Ping godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Router       /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: "pong"})
}
