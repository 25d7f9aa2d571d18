package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"budget_tracker/internal/adapter/http/dto/response"
	"budget_tracker/internal/adapter/http/handlers/mocks"
	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase"
	"budget_tracker/pkg"

	"go.uber.org/mock/gomock"
)

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(testBudgeter)
		r.POST("/api/budgets", NewBudgetHandler(uc).CreateBudget)

		w := serve(r, http.MethodPost, "/api/budgets", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(nil)
		r.POST("/api/budgets", NewBudgetHandler(uc).CreateBudget)

		for _, body := range []string{`{"project_id":1,"details":[{"item_name":"Cement"}]}`, "", `{"project_id":`} {
			w := serve(r, http.MethodPost, "/api/budgets", body)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("body %q: expected 401, got %d", body, w.Code)
			}
		}
	})

	t.Run("missing project id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(testBudgeter)
		r.POST("/api/budgets", NewBudgetHandler(uc).CreateBudget)

		uc.EXPECT().CreateBudget(gomock.Any(), testBudgeter, int64(0), gomock.Any()).Return(entities.Budget{}, usecase.ErrProjectIDRequired)

		w := serve(r, http.MethodPost, "/api/budgets", `{"details":[{"item_name":"Cement"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		decode(t, w, &body)
		if body.Code != "PROJECT_ID_REQUIRED" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(testBudgeter)
		r.POST("/api/budgets", NewBudgetHandler(uc).CreateBudget)

		uc.EXPECT().CreateBudget(gomock.Any(), testBudgeter, int64(99), gomock.Any()).Return(entities.Budget{}, usecase.ErrProjectNotFound)

		w := serve(r, http.MethodPost, "/api/budgets", `{"project_id":99,"details":[{"item_name":"Cement"}]}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("persistence failure surfaces the cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(testBudgeter)
		r.POST("/api/budgets", NewBudgetHandler(uc).CreateBudget)

		uc.EXPECT().CreateBudget(gomock.Any(), testBudgeter, int64(1), gomock.Any()).Return(entities.Budget{}, errors.New("disk full"))

		w := serve(r, http.MethodPost, "/api/budgets", `{"project_id":1,"details":[{"item_name":"Cement"}]}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body pkg.HTTPError
		decode(t, w, &body)
		if body.Details != "disk full" {
			t.Fatalf("expected cause in details, got %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(testBudgeter)
		r.POST("/api/budgets", NewBudgetHandler(uc).CreateBudget)

		want := []usecase.BudgetDetailInput{
			{ItemType: entities.ItemTypeMaterial, ItemName: "Cement", Unit: "t", Quantity: 2, UnitPrice: 100},
			{ItemType: entities.ItemTypeLabor, ItemName: "Crew", Quantity: 3, UnitPrice: 50},
		}
		uc.EXPECT().CreateBudget(gomock.Any(), testBudgeter, int64(1), want).Return(entities.Budget{ID: 5, TotalAmount: 350}, nil)

		w := serve(r, http.MethodPost, "/api/budgets", `{"project_id":1,"details":[
			{"item_type":"材料","item_name":"Cement","unit":"t","quantity":2,"unit_price":100},
			{"item_type":"Labor","material_name":"Crew","quantity":"3","unit_price":"50"}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body response.BudgetCreatedResponse
		decode(t, w, &body)
		if body.BudgetID != 5 {
			t.Fatalf("expected budget_id 5, got %d", body.BudgetID)
		}
	})
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(testBudgeter)
		r.GET("/api/budgets/:id", NewBudgetHandler(uc).GetBudget)

		uc.EXPECT().GetBudget(gomock.Any(), testBudgeter, int64(42)).Return(entities.Budget{}, usecase.ErrBudgetNotFound)

		w := serve(r, http.MethodGet, "/api/budgets/42", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(testBudgeter)
		r.GET("/api/budgets/:id", NewBudgetHandler(uc).GetBudget)

		uc.EXPECT().GetBudget(gomock.Any(), testBudgeter, int64(0)).Return(entities.Budget{}, usecase.ErrInvalidBudgetID)

		w := serve(r, http.MethodGet, "/api/budgets/abc", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(testBudgeter)
		r.GET("/api/budgets/:id", NewBudgetHandler(uc).GetBudget)

		created := time.Date(2025, 9, 3, 14, 5, 6, 0, time.UTC)
		uc.EXPECT().GetBudget(gomock.Any(), testBudgeter, int64(5)).Return(entities.Budget{
			ID: 5, ProjectID: 1, ProjectName: "Bridge", CreatorID: 2, CreatorName: "budgeter",
			CreatedAt: created, Status: entities.BudgetStatusPending, TotalAmount: 350,
			Details: []entities.BudgetDetail{{ID: 1, ItemType: entities.ItemTypeMaterial, ItemName: "Cement", Quantity: 2, UnitPrice: 100, Amount: 200}},
		}, nil)

		w := serve(r, http.MethodGet, "/api/budgets/5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.BudgetResponse
		decode(t, w, &body)
		if body.CreateTime != "2025-09-03 14:05:06" || body.Status != "待审批" || body.TotalAmount != 350 {
			t.Fatalf("unexpected body: %+v", body)
		}
		if len(body.Details) != 1 || body.Details[0].ItemType != "材料" {
			t.Fatalf("unexpected details: %+v", body.Details)
		}
	})
}

func TestBudgetHandler_ListBudgets(t *testing.T) {
	t.Run("status filter accepts labels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(testBudgeter)
		r.GET("/api/budgets", NewBudgetHandler(uc).ListBudgets)

		uc.EXPECT().ListBudgets(gomock.Any(), testBudgeter, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *entities.Identity, status *entities.BudgetStatus) ([]entities.Budget, error) {
				if status == nil || *status != entities.BudgetStatusApproved {
					t.Fatalf("expected approved filter, got %v", status)
				}
				return []entities.Budget{{ID: 1, Status: entities.BudgetStatusApproved}}, nil
			})

		w := serve(r, http.MethodGet, "/api/budgets?status=已审批", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []response.BudgetSummaryResponse
		decode(t, w, &body)
		if len(body) != 1 || body[0].Status != "已审批" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("no filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(testBudgeter)
		r.GET("/api/budgets", NewBudgetHandler(uc).ListBudgets)

		var noFilter *entities.BudgetStatus
		uc.EXPECT().ListBudgets(gomock.Any(), testBudgeter, noFilter).Return(nil, nil)

		w := serve(r, http.MethodGet, "/api/budgets", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(testBudgeter)
		r.GET("/api/budgets", NewBudgetHandler(uc).ListBudgets)

		uc.EXPECT().ListBudgets(gomock.Any(), testBudgeter, gomock.Any()).Return(nil, usecase.ErrInvalidBudgetStatus)

		w := serve(r, http.MethodGet, "/api/budgets?status=shipped", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestBudgetHandler_UpdateBudgetStatus(t *testing.T) {
	t.Run("budgeter is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(testBudgeter)
		r.PUT("/api/budgets/:id/status", NewBudgetHandler(uc).UpdateBudgetStatus)

		for _, body := range []string{`{"status":"已审批"}`, `{"status":"bogus"}`, `{"status":1}`, ""} {
			w := serve(r, http.MethodPut, "/api/budgets/5/status", body)
			if w.Code != http.StatusForbidden {
				t.Fatalf("body %q: expected 403, got %d", body, w.Code)
			}
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(nil)
		r.PUT("/api/budgets/:id/status", NewBudgetHandler(uc).UpdateBudgetStatus)

		w := serve(r, http.MethodPut, "/api/budgets/5/status", `{"status":1}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(testManager)
		r.PUT("/api/budgets/:id/status", NewBudgetHandler(uc).UpdateBudgetStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), testManager, int64(5), entities.BudgetStatusDraft).Return(entities.Budget{}, usecase.ErrInvalidBudgetStatus)

		w := serve(r, http.MethodPut, "/api/budgets/5/status", `{"status":"草稿"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := newTestRouter(testManager)
		r.PUT("/api/budgets/:id/status", NewBudgetHandler(uc).UpdateBudgetStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), testManager, int64(5), entities.BudgetStatusApproved).Return(entities.Budget{ID: 5, Status: entities.BudgetStatusApproved}, nil)

		w := serve(r, http.MethodPut, "/api/budgets/5/status", `{"status":"Approved"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.BudgetStatusResponse
		decode(t, w, &body)
		if body.Status != "已审批" {
			t.Fatalf("unexpected status %q", body.Status)
		}
	})
}
