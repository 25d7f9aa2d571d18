package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"budget_tracker/internal/adapter/http/routes"
	"budget_tracker/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Budget Approval API
// @version         1.0
// @description     Projects, itemized budgets and their approval workflow.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token returned by /login. The "session" cookie works too.

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := routes.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	defer app.Close()

	if err := routes.Run(ctx, cfg, app.Router); err != nil {
		log.Printf("Server stopped with error: %v", err)
	}
}
