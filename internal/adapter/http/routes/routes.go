package routes

import (
	"log"
	"net/http"

	_ "budget_tracker/docs"
	"budget_tracker/internal/adapter/http/handlers"
	"budget_tracker/internal/adapter/http/middleware"
	"budget_tracker/internal/adapter/http/session"
	"budget_tracker/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const PathAPI = "/api"

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Project    *handlers.ProjectHandler
	Budget     *handlers.BudgetHandler
	Statistics *handlers.StatisticsHandler
}

// NewRouter assembles the gin engine. Every /api request has its session
// resolved once before reaching a handler.
func NewRouter(cfg *config.Config, h Handlers, sessions *session.Manager, revocations session.RevocationStore) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(PathAPI)
	api.Use(middleware.ResolveIdentity(sessions, revocations))
	addPingRoutes(api)
	addAuthRoutes(api, h.Auth)
	addProjectRoutes(api, h.Project)
	addBudgetRoutes(api, h.Budget)
	addStatisticsRoutes(api, h.Statistics)
	addAdminRoutes(api, h.Auth)

	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[http][recovery] panic path=%s err=%v", c.Request.URL.Path, recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS(cfg.CORSOrigins))
}
