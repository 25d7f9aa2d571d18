package routes

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"

	"budget_tracker/internal/adapter/http/handlers"
	"budget_tracker/internal/adapter/http/session"
	"budget_tracker/internal/adapter/persistence/repository"
	"budget_tracker/internal/config"
	"budget_tracker/internal/infrastructure/cache"
	"budget_tracker/internal/infrastructure/database"
	"budget_tracker/internal/infrastructure/messaging"
	"budget_tracker/internal/infrastructure/security"
	"budget_tracker/internal/usecase"
	"budget_tracker/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// App is the assembled service: its router and the handles to release on
// shutdown.
type App struct {
	Router  *gin.Engine
	closers []func() error
}

// Close releases every handle opened by Build, last opened first.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Printf("[app][shutdown] close failed err=%v", err)
		}
	}
}

type stores struct {
	identities interfaces.IIdentityRepository
	projects   interfaces.IProjectRepository
	budgets    interfaces.IBudgetRepository
}

// Build opens storage, the optional Redis and RabbitMQ connections, seeds an
// empty store when configured and wires the router.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{}
	fail := func(err error) (*App, error) {
		app.Close()
		return nil, err
	}

	st, err := openStores(ctx, cfg, app)
	if err != nil {
		return fail(err)
	}

	revocations, err := openRevocations(ctx, cfg, app)
	if err != nil {
		return fail(err)
	}

	var events interfaces.IBudgetEventPublisher
	if cfg.AMQPURL != "" {
		publisher, err := messaging.NewRabbitMQPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			return fail(err)
		}
		app.closers = append(app.closers, publisher.Close)
		events = publisher
	} else {
		log.Printf("[app][wiring] AMQP_URL not set, budget events disabled")
	}

	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	if cfg.SeedData {
		if _, err := usecase.NewSeedUseCase(st.identities, st.projects, st.budgets, hasher).Seed(ctx); err != nil {
			return fail(fmt.Errorf("seed: %w", err))
		}
	}

	secret, err := sessionSecret(cfg)
	if err != nil {
		return fail(err)
	}
	sessions := session.NewManager(secret, cfg.SessionTTL)

	identityUseCase := usecase.NewIdentityUseCase(st.identities, hasher)
	projectUseCase := usecase.NewProjectUseCase(st.projects, st.identities)
	budgetUseCase := usecase.NewBudgetUseCase(st.budgets, st.projects, events)
	statisticsUseCase := usecase.NewStatisticsUseCase(st.budgets)

	app.Router = NewRouter(cfg, Handlers{
		Auth:       handlers.NewAuthHandler(identityUseCase, sessions, revocations, cfg.SessionCookieSecure),
		Project:    handlers.NewProjectHandler(projectUseCase),
		Budget:     handlers.NewBudgetHandler(budgetUseCase),
		Statistics: handlers.NewStatisticsHandler(statisticsUseCase),
	}, sessions, revocations)
	return app, nil
}

func openStores(ctx context.Context, cfg *config.Config, app *App) (stores, error) {
	if cfg.StorageDriver == config.StorageDynamoDB {
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return stores{}, err
		}
		return stores{
			identities: repository.NewIdentityDynamoRepository(ddb),
			projects:   repository.NewProjectDynamoRepository(ddb),
			budgets:    repository.NewBudgetDynamoRepository(ddb),
		}, nil
	}

	db, err := database.ConnectGorm(cfg)
	if err != nil {
		return stores{}, err
	}
	app.closers = append(app.closers, func() error { return database.CloseGorm(db) })
	if err := database.Migrate(db, repository.GormModels()...); err != nil {
		return stores{}, err
	}
	return stores{
		identities: repository.NewIdentityGormRepository(db),
		projects:   repository.NewProjectGormRepository(db),
		budgets:    repository.NewBudgetGormRepository(db),
	}, nil
}

func openRevocations(ctx context.Context, cfg *config.Config, app *App) (session.RevocationStore, error) {
	client, err := cache.ConnectRedis(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return session.NewMemoryRevocationStore(), nil
	}
	app.closers = append(app.closers, client.Close)
	return session.NewRedisRevocationStore(client), nil
}

// sessionSecret returns the configured key. Development runs without one get
// a random key, so sessions do not survive a restart.
func sessionSecret(cfg *config.Config) ([]byte, error) {
	if cfg.SessionSecret != "" {
		return []byte(cfg.SessionSecret), nil
	}
	if !cfg.IsDevelopment() {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate session secret: %w", err)
	}
	log.Printf("[app][wiring] SESSION_SECRET not set, using a random development key")
	return secret, nil
}
