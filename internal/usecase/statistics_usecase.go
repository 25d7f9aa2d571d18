package usecase

import (
	"context"
	"time"

	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase/interfaces"
)

// Statistics is the dashboard summary of the ledger.
type Statistics struct {
	Month         time.Time
	MonthlyTotal  float64
	ApprovedTotal float64
}

// IStatisticsUseCase derives totals from the current budgets on every call.
type IStatisticsUseCase interface {
	MonthlyTotal(ctx context.Context, actor *entities.Identity, reference time.Time) (float64, error)
	ApprovedTotal(ctx context.Context, actor *entities.Identity) (float64, error)
	Summary(ctx context.Context, actor *entities.Identity, reference time.Time) (Statistics, error)
}

type StatisticsUseCase struct {
	repo interfaces.IBudgetRepository
}

var _ IStatisticsUseCase = (*StatisticsUseCase)(nil)

func NewStatisticsUseCase(repo interfaces.IBudgetRepository) *StatisticsUseCase {
	return &StatisticsUseCase{repo: repo}
}

// MonthWindow returns [first day of reference's month, first day of the next
// month) in UTC.
func MonthWindow(reference time.Time) (time.Time, time.Time) {
	ref := reference.UTC()
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func (u *StatisticsUseCase) MonthlyTotal(ctx context.Context, actor *entities.Identity, reference time.Time) (float64, error) {
	if err := Authorize(actor, ActionViewStatistics); err != nil {
		return 0, err
	}
	from, to := MonthWindow(reference)
	return u.repo.SumTotal(ctx, entities.BudgetTotalFilter{CreatedFrom: from, CreatedTo: to})
}

func (u *StatisticsUseCase) ApprovedTotal(ctx context.Context, actor *entities.Identity) (float64, error) {
	if err := Authorize(actor, ActionViewStatistics); err != nil {
		return 0, err
	}
	approved := entities.BudgetStatusApproved
	return u.repo.SumTotal(ctx, entities.BudgetTotalFilter{Status: &approved})
}

func (u *StatisticsUseCase) Summary(ctx context.Context, actor *entities.Identity, reference time.Time) (Statistics, error) {
	monthly, err := u.MonthlyTotal(ctx, actor, reference)
	if err != nil {
		return Statistics{}, err
	}
	approved, err := u.ApprovedTotal(ctx, actor)
	if err != nil {
		return Statistics{}, err
	}
	month, _ := MonthWindow(reference)
	return Statistics{Month: month, MonthlyTotal: monthly, ApprovedTotal: approved}, nil
}
