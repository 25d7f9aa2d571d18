package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"budget_tracker/internal/domain/entities"
	mock_interfaces "budget_tracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMonthWindow(t *testing.T) {
	from, to := MonthWindow(time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC))
	if !from.Equal(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start %v", from)
	}
	if !to.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end %v", to)
	}
}

func TestStatisticsUseCase(t *testing.T) {
	ref := time.Date(2025, 7, 15, 8, 0, 0, 0, time.UTC)

	t.Run("anonymous", func(t *testing.T) {
		uc := NewStatisticsUseCase(nil)
		if _, err := uc.Summary(context.Background(), nil, ref); !errors.Is(err, ErrAuthenticationRequired) {
			t.Fatalf("expected ErrAuthenticationRequired, got %v", err)
		}
	})

	t.Run("monthly window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewStatisticsUseCase(repo)

		repo.EXPECT().SumTotal(gomock.Any(), entities.BudgetTotalFilter{
			CreatedFrom: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			CreatedTo:   time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		}).Return(350.0, nil)

		got, err := uc.MonthlyTotal(context.Background(), testBudgeter, ref)
		if err != nil || got != 350 {
			t.Fatalf("unexpected result %v err=%v", got, err)
		}
	})

	t.Run("summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewStatisticsUseCase(repo)

		approved := entities.BudgetStatusApproved
		repo.EXPECT().SumTotal(gomock.Any(), gomock.Any()).Return(0.0, nil)
		repo.EXPECT().SumTotal(gomock.Any(), entities.BudgetTotalFilter{Status: &approved}).Return(1200.5, nil)

		got, err := uc.Summary(context.Background(), testLeader, ref)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.MonthlyTotal != 0 || got.ApprovedTotal != 1200.5 {
			t.Fatalf("unexpected summary: %+v", got)
		}
		if got.Month.Month() != time.July {
			t.Fatalf("unexpected month %v", got.Month)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewStatisticsUseCase(repo)
		repo.EXPECT().SumTotal(gomock.Any(), gomock.Any()).Return(0.0, errors.New("db"))

		if _, err := uc.ApprovedTotal(context.Background(), testLeader); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
