package interfaces

import (
	"context"

	"budget_tracker/internal/domain/entities"
)

// BudgetMutation edits a budget loaded inside UpdateStatus's atomic unit.
type BudgetMutation func(b *entities.Budget) error

// IBudgetRepository abstracts persistence for budgets and their details.
//
// The ledger relies on it to:
//   - persist a budget and all of its details in one atomic unit
//   - load a budget with its details and resolved names
//   - list budget summaries, optionally by status
//   - apply a status change to a single budget without touching its details
//   - sum totals for the statistics views
type IBudgetRepository interface {
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	GetByID(ctx context.Context, id int64) (entities.Budget, error)
	List(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error)
	UpdateStatus(ctx context.Context, id int64, mutate BudgetMutation) (entities.Budget, error)
	SumTotal(ctx context.Context, filter entities.BudgetTotalFilter) (float64, error)
}
