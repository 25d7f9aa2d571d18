package response

import (
	"budget_tracker/internal/adapter/http/dto/labels"
	"budget_tracker/internal/domain/entities"
)

type BudgetCreatedResponse struct {
	Message  string `json:"message"`
	BudgetID int64  `json:"budget_id"`
}

type BudgetStatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type BudgetDetailResponse struct {
	ID            int64   `json:"id"`
	ItemType      string  `json:"item_type"`
	ItemName      string  `json:"item_name"`
	Specification string  `json:"specification"`
	Unit          string  `json:"unit"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	Amount        float64 `json:"amount"`
}

// BudgetResponse is the full view of one budget.
type BudgetResponse struct {
	ID          int64                  `json:"id"`
	ProjectID   int64                  `json:"project_id"`
	ProjectName string                 `json:"project_name"`
	CreatorID   int64                  `json:"creator_id"`
	CreatorName string                 `json:"creator_name"`
	CreateTime  string                 `json:"create_time"`
	Status      string                 `json:"status"`
	TotalAmount float64                `json:"total_amount"`
	Details     []BudgetDetailResponse `json:"details"`
}

// BudgetSummaryResponse is one row of the budget list. ApproverName and
// ApprovedAt are null unless the budget is approved.
type BudgetSummaryResponse struct {
	ID           int64   `json:"id"`
	ProjectName  string  `json:"project_name"`
	CreatorName  string  `json:"creator_name"`
	CreatedAt    string  `json:"created_at"`
	Status       string  `json:"status"`
	TotalAmount  float64 `json:"total_amount"`
	ApproverName *string `json:"approver_name"`
	ApprovedAt   *string `json:"approved_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	res := BudgetResponse{
		ID:          b.ID,
		ProjectID:   b.ProjectID,
		ProjectName: b.ProjectName,
		CreatorID:   b.CreatorID,
		CreatorName: b.CreatorName,
		CreateTime:  b.CreatedAt.UTC().Format(DateTimeLayout),
		Status:      labels.Status(b.Status),
		TotalAmount: b.TotalAmount,
		Details:     make([]BudgetDetailResponse, 0, len(b.Details)),
	}
	for _, d := range b.Details {
		res.Details = append(res.Details, BudgetDetailResponse{
			ID:            d.ID,
			ItemType:      labels.ItemType(d.ItemType),
			ItemName:      d.ItemName,
			Specification: d.Specification,
			Unit:          d.Unit,
			Quantity:      d.Quantity,
			UnitPrice:     d.UnitPrice,
			Amount:        d.Amount,
		})
	}
	return res
}

func FromBudgetSummary(b entities.Budget) BudgetSummaryResponse {
	res := BudgetSummaryResponse{
		ID:          b.ID,
		ProjectName: b.ProjectName,
		CreatorName: b.CreatorName,
		CreatedAt:   b.CreatedAt.UTC().Format(DateTimeLayout),
		Status:      labels.Status(b.Status),
		TotalAmount: b.TotalAmount,
	}
	if b.Status == entities.BudgetStatusApproved && b.ApprovedAt != nil {
		name := b.ApproverName
		at := b.ApprovedAt.UTC().Format(DateTimeLayout)
		res.ApproverName = &name
		res.ApprovedAt = &at
	}
	return res
}

func FromBudgetSummaries(list []entities.Budget) []BudgetSummaryResponse {
	out := make([]BudgetSummaryResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBudgetSummary(b))
	}
	return out
}
