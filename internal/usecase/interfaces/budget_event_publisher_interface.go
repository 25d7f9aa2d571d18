package interfaces

import (
	"context"

	"budget_tracker/internal/domain/entities"
)

// IBudgetEventPublisher announces committed ledger changes to other services.
type IBudgetEventPublisher interface {
	BudgetCreated(ctx context.Context, b entities.Budget) error
	BudgetStatusChanged(ctx context.Context, b entities.Budget, previous entities.BudgetStatus) error
}
