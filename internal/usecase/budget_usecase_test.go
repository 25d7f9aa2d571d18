package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase/interfaces"
	mock_interfaces "budget_tracker/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func bridgeDetails() []BudgetDetailInput {
	return []BudgetDetailInput{
		{ItemType: entities.ItemTypeMaterial, ItemName: "Cement", Unit: "t", Quantity: 2, UnitPrice: 100},
		{ItemType: entities.ItemTypeLabor, ItemName: "Welder", Unit: "month", Quantity: 3, UnitPrice: 50},
	}
}

func TestBudgetUseCase_CreateBudget(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		_, err := uc.CreateBudget(context.Background(), nil, 1, bridgeDetails())
		if !errors.Is(err, ErrAuthenticationRequired) {
			t.Fatalf("expected ErrAuthenticationRequired, got %v", err)
		}
	})

	t.Run("missing project id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		_, err := uc.CreateBudget(context.Background(), testBudgeter, 0, bridgeDetails())
		if !errors.Is(err, ErrProjectIDRequired) {
			t.Fatalf("expected ErrProjectIDRequired, got %v", err)
		}
	})

	t.Run("empty details", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		_, err := uc.CreateBudget(context.Background(), testBudgeter, 1, nil)
		if !errors.Is(err, ErrBudgetDetailsRequired) {
			t.Fatalf("expected ErrBudgetDetailsRequired, got %v", err)
		}
	})

	t.Run("invalid detail rejects whole budget", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		details := append(bridgeDetails(), BudgetDetailInput{ItemName: "Crane", Quantity: -1, UnitPrice: 10})
		_, err := uc.CreateBudget(context.Background(), testBudgeter, 1, details)
		if !errors.Is(err, ErrInvalidBudgetDetail) {
			t.Fatalf("expected ErrInvalidBudgetDetail, got %v", err)
		}
	})

	t.Run("non-finite numbers", func(t *testing.T) {
		cases := map[string]BudgetDetailInput{
			"overflowing amount": {ItemName: "Steel", Quantity: 1e308, UnitPrice: 1e308},
			"nan quantity":       {ItemName: "Steel", Quantity: math.NaN(), UnitPrice: 1},
			"infinite price":     {ItemName: "Steel", Quantity: 1, UnitPrice: math.Inf(1)},
		}
		for name, detail := range cases {
			t.Run(name, func(t *testing.T) {
				uc := NewBudgetUseCase(nil, nil, nil)
				_, err := uc.CreateBudget(context.Background(), testBudgeter, 1, []BudgetDetailInput{detail})
				if !errors.Is(err, ErrInvalidBudgetDetail) {
					t.Fatalf("expected ErrInvalidBudgetDetail, got %v", err)
				}
			})
		}
	})

	t.Run("text longer than its column", func(t *testing.T) {
		cases := map[string]BudgetDetailInput{
			"item_name":     {ItemName: strings.Repeat("钢", entities.MaxItemNameLength+1)},
			"specification": {ItemName: "Steel", Specification: strings.Repeat("x", entities.MaxSpecificationLength+1)},
			"unit":          {ItemName: "Steel", Unit: strings.Repeat("t", entities.MaxUnitLength+1)},
		}
		for name, detail := range cases {
			t.Run(name, func(t *testing.T) {
				uc := NewBudgetUseCase(nil, nil, nil)
				_, err := uc.CreateBudget(context.Background(), testBudgeter, 1, []BudgetDetailInput{detail})
				if !errors.Is(err, ErrInvalidBudgetDetail) {
					t.Fatalf("expected ErrInvalidBudgetDetail, got %v", err)
				}
			})
		}
	})

	t.Run("overflowing total", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		details := []BudgetDetailInput{
			{ItemName: "Steel", Quantity: 1, UnitPrice: 1e308},
			{ItemName: "Steel", Quantity: 1, UnitPrice: 1e308},
		}
		_, err := uc.CreateBudget(context.Background(), testBudgeter, 1, details)
		if !errors.Is(err, ErrInvalidBudgetDetail) {
			t.Fatalf("expected ErrInvalidBudgetDetail, got %v", err)
		}
	})

	t.Run("unknown item type", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		_, err := uc.CreateBudget(context.Background(), testBudgeter, 1, []BudgetDetailInput{{ItemType: "tools", ItemName: "Saw"}})
		if !errors.Is(err, ErrInvalidBudgetDetail) {
			t.Fatalf("expected ErrInvalidBudgetDetail, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewBudgetUseCase(mock_interfaces.NewMockIBudgetRepository(ctrl), projects, nil)

		projects.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entities.Project{}, nil)

		_, err := uc.CreateBudget(context.Background(), testBudgeter, 99, bridgeDetails())
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewBudgetUseCase(repo, projects, nil)

		projects.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Project{ID: 1, Name: "Bridge"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Budget{}, errors.New("db"))

		_, err := uc.CreateBudget(context.Background(), testBudgeter, 1, bridgeDetails())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("prices details and starts pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		events := mock_interfaces.NewMockIBudgetEventPublisher(ctrl)
		uc := NewBudgetUseCase(repo, projects, events)

		projects.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Project{ID: 1, Name: "Bridge"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.Status != entities.BudgetStatusPending {
					t.Fatalf("expected pending, got %s", b.Status)
				}
				if b.TotalAmount != 350 {
					t.Fatalf("expected total 350, got %v", b.TotalAmount)
				}
				if b.Details[0].Amount != 200 || b.Details[1].Amount != 150 {
					t.Fatalf("unexpected amounts: %+v", b.Details)
				}
				if b.CreatorID != 2 || b.ProjectName != "Bridge" || b.CreatedAt.IsZero() {
					t.Fatalf("unexpected budget: %+v", b)
				}
				b.ID = 5
				return b, nil
			},
		)
		events.EXPECT().BudgetCreated(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		got, err := uc.CreateBudget(context.Background(), testBudgeter, 1, bridgeDetails())
		if err != nil {
			t.Fatalf("publish failures must not fail the operation: %v", err)
		}
		if got.ID != 5 {
			t.Fatalf("unexpected id %d", got.ID)
		}
	})

	t.Run("defaults item type to material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewBudgetUseCase(repo, projects, nil)

		projects.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Project{ID: 1}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.Details[0].ItemType != entities.ItemTypeMaterial || b.TotalAmount != 0 {
					t.Fatalf("unexpected detail: %+v", b.Details[0])
				}
				return b, nil
			},
		)

		if _, err := uc.CreateBudget(context.Background(), testBudgeter, 1, []BudgetDetailInput{{ItemName: "Sand"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBudgetUseCase_GetBudget(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		if _, err := uc.GetBudget(context.Background(), nil, 1); !errors.Is(err, ErrAuthenticationRequired) {
			t.Fatalf("expected ErrAuthenticationRequired, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), int64(8)).Return(entities.Budget{}, nil)

		if _, err := uc.GetBudget(context.Background(), testBudgeter, 8); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), int64(8)).Return(entities.Budget{ID: 8, TotalAmount: 10}, nil)

		got, err := uc.GetBudget(context.Background(), testBudgeter, 8)
		if err != nil || got.ID != 8 {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})
}

func TestBudgetUseCase_ListBudgets(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		bad := entities.BudgetStatus("archived")
		if _, err := uc.ListBudgets(context.Background(), testBudgeter, &bad); !errors.Is(err, ErrInvalidBudgetStatus) {
			t.Fatalf("expected ErrInvalidBudgetStatus, got %v", err)
		}
	})

	t.Run("passes filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)
		approved := entities.BudgetStatusApproved
		repo.EXPECT().List(gomock.Any(), entities.BudgetFilter{Status: &approved}).Return([]entities.Budget{{ID: 1, Status: approved}}, nil)

		got, err := uc.ListBudgets(context.Background(), testBudgeter, &approved)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result len=%d err=%v", len(got), err)
		}
	})
}

func TestBudgetUseCase_UpdateStatus(t *testing.T) {
	t.Run("budgeter forbidden for every status", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		for _, s := range []entities.BudgetStatus{entities.BudgetStatusApproved, entities.BudgetStatusDraft, "bogus"} {
			if _, err := uc.UpdateStatus(context.Background(), testBudgeter, 1, s); !errors.Is(err, ErrForbidden) {
				t.Fatalf("%s: expected ErrForbidden, got %v", s, err)
			}
		}
	})

	t.Run("draft is not a target", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil)
		if _, err := uc.UpdateStatus(context.Background(), testLeader, 1, entities.BudgetStatusDraft); !errors.Is(err, ErrInvalidBudgetStatus) {
			t.Fatalf("expected ErrInvalidBudgetStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(4), gomock.Any()).Return(entities.Budget{}, nil)

		if _, err := uc.UpdateStatus(context.Background(), testManager, 4, entities.BudgetStatusApproved); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("manager approves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		events := mock_interfaces.NewMockIBudgetEventPublisher(ctrl)
		uc := NewBudgetUseCase(repo, nil, events)

		stored := entities.Budget{ID: 4, Status: entities.BudgetStatusPending, TotalAmount: 350}
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(4), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, mutate interfaces.BudgetMutation) (entities.Budget, error) {
				b := stored
				if err := mutate(&b); err != nil {
					return entities.Budget{}, err
				}
				return b, nil
			},
		)
		events.EXPECT().BudgetStatusChanged(gomock.Any(), gomock.Any(), entities.BudgetStatusPending).Return(nil)

		got, err := uc.UpdateStatus(context.Background(), testManager, 4, entities.BudgetStatusApproved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.BudgetStatusApproved || got.TotalAmount != 350 {
			t.Fatalf("unexpected budget: %+v", got)
		}
		if got.ApproverName != "manager" || got.ApprovedAt == nil {
			t.Fatalf("expected approval to be recorded: %+v", got)
		}
	})

	t.Run("same status is idempotent and silent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		events := mock_interfaces.NewMockIBudgetEventPublisher(ctrl)
		uc := NewBudgetUseCase(repo, nil, events)

		repo.EXPECT().UpdateStatus(gomock.Any(), int64(4), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, mutate interfaces.BudgetMutation) (entities.Budget, error) {
				b := entities.Budget{ID: 4, Status: entities.BudgetStatusPending}
				_ = mutate(&b)
				return b, nil
			},
		).Times(2)

		for i := 0; i < 2; i++ {
			got, err := uc.UpdateStatus(context.Background(), testLeader, 4, entities.BudgetStatusPending)
			if err != nil || got.Status != entities.BudgetStatusPending {
				t.Fatalf("unexpected result %+v err=%v", got, err)
			}
		}
	})
}
