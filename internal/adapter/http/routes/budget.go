package routes

import (
	"budget_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLogin      = "/login"
	PathLogout     = "/logout"
	PathSession    = "/session"
	PathProjects   = "/projects"
	PathBudgets    = "/budgets"
	PathStatistics = "/statistics"
	PathAdmin      = "/admin"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.POST(PathLogin, h.Login)
	rg.POST(PathLogout, h.Logout)
	rg.GET(PathSession, h.Session)
}

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
	}
}

func addBudgetRoutes(rg *gin.RouterGroup, h *handlers.BudgetHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("", h.ListBudgets)
		budgets.POST("", h.CreateBudget)
		budgets.GET("/:id", h.GetBudget)
		budgets.PUT("/:id/status", h.UpdateBudgetStatus)
	}
}

func addStatisticsRoutes(rg *gin.RouterGroup, h *handlers.StatisticsHandler) {
	rg.GET(PathStatistics, h.GetStatistics)
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.GET("/users", h.ListUsers)
	}
}
