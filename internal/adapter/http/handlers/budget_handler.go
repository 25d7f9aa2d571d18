package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"budget_tracker/internal/adapter/http/dto/labels"
	"budget_tracker/internal/adapter/http/dto/request"
	"budget_tracker/internal/adapter/http/dto/response"
	"budget_tracker/internal/adapter/http/middleware"
	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase"
	"budget_tracker/pkg"

	"github.com/gin-gonic/gin"
)

// BudgetHandler exposes the budget ledger.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget godoc
// @Summary      Submit a budget
// @Description  Prices every detail line (quantity x unit_price) and stores the budget as pending.
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateBudgetRequest  true  "Budget"
// @Success      201   {object}  response.BudgetCreatedResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	if !authorize(c, usecase.ActionCreateBudget) {
		return
	}
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	budget, err := h.usecase.CreateBudget(c.Request.Context(), middleware.IdentityFrom(c), payload.ResolveProjectID(), payload.ToInputs())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}

	c.JSON(http.StatusCreated, response.BudgetCreatedResponse{Message: "预算创建成功", BudgetID: budget.ID})
}

// GetBudget godoc
// @Summary      Budget with details
// @Tags         budgets
// @Produce      json
// @Param        id   path      int  true  "Budget ID"
// @Success      200  {object}  response.BudgetResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetBudget(c.Request.Context(), middleware.IdentityFrom(c), budgetIDParam(c))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// ListBudgets godoc
// @Summary      List budgets
// @Tags         budgets
// @Produce      json
// @Param        status  query     string  false  "Status label or name (待审批, approved, ...)"
// @Success      200     {array}   response.BudgetSummaryResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      401     {object}  pkg.HTTPError
// @Router       /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	var status *entities.BudgetStatus
	if raw := c.Query("status"); raw != "" {
		s := labels.ParseStatus(raw)
		status = &s
	}

	budgets, err := h.usecase.ListBudgets(c.Request.Context(), middleware.IdentityFrom(c), status)
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetSummaries(budgets))
}

// UpdateBudgetStatus godoc
// @Summary      Approve, reject or reopen a budget
// @Description  Leaders and project managers only. Draft is not a valid target.
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id    path      int                          true  "Budget ID"
// @Param        body  body      request.UpdateStatusRequest  true  "New status"
// @Success      200   {object}  response.BudgetStatusResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /budgets/{id}/status [put]
func (h *BudgetHandler) UpdateBudgetStatus(c *gin.Context) {
	if !authorize(c, usecase.ActionUpdateBudgetStatus) {
		return
	}
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	budget, err := h.usecase.UpdateStatus(c.Request.Context(), middleware.IdentityFrom(c), budgetIDParam(c), labels.ParseStatus(payload.Status))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}

	c.JSON(http.StatusOK, response.BudgetStatusResponse{Message: "预算状态已更新", Status: labels.Status(budget.Status)})
}

// budgetIDParam returns 0 for a malformed id; the ledger reports it as not found.
func budgetIDParam(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func mapBudgetError(err error) *pkg.AppError {
	if appErr := mapAccessError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrProjectIDRequired):
		return pkg.NewDomainErrorSimple("PROJECT_ID_REQUIRED", "项目ID不能为空", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetDetailsRequired):
		return pkg.NewDomainErrorSimple("BUDGET_DETAILS_REQUIRED", "预算明细不能为空", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBudgetDetail):
		return pkg.NewDomainError("INVALID_BUDGET_DETAIL", "预算明细无效", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBudgetStatus):
		return pkg.NewDomainErrorSimple("INVALID_BUDGET_STATUS", "无效的状态值", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "项目不存在", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotFound), errors.Is(err, usecase.ErrInvalidBudgetID):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "预算不存在", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
