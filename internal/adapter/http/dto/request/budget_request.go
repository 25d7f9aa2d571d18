package request

import (
	"strings"

	"budget_tracker/internal/adapter/http/dto/labels"
	"budget_tracker/internal/usecase"
)

type BudgetDetailRequest struct {
	ItemType      string `json:"item_type"`
	ItemName      string `json:"item_name"`
	MaterialName  string `json:"material_name"`
	Specification string `json:"specification"`
	Unit          string `json:"unit"`
	Quantity      Number `json:"quantity"`
	UnitPrice     Number `json:"unit_price"`
}

// ResolveItemName prefers item_name and falls back to the older
// material_name field.
func (r BudgetDetailRequest) ResolveItemName() string {
	if v := strings.TrimSpace(r.ItemName); v != "" {
		return v
	}
	return strings.TrimSpace(r.MaterialName)
}

func (r BudgetDetailRequest) ToInput() usecase.BudgetDetailInput {
	return usecase.BudgetDetailInput{
		ItemType:      labels.ParseItemType(r.ItemType),
		ItemName:      r.ResolveItemName(),
		Specification: r.Specification,
		Unit:          r.Unit,
		Quantity:      r.Quantity.Float64(),
		UnitPrice:     r.UnitPrice.Float64(),
	}
}

type CreateBudgetRequest struct {
	ProjectID Number                `json:"project_id"`
	Details   []BudgetDetailRequest `json:"details"`
}

// ResolveProjectID returns 0 for missing or fractional ids; the ledger rejects
// both.
func (r CreateBudgetRequest) ResolveProjectID() int64 {
	id := int64(r.ProjectID)
	if float64(id) != r.ProjectID.Float64() {
		return 0
	}
	return id
}

func (r CreateBudgetRequest) ToInputs() []usecase.BudgetDetailInput {
	out := make([]usecase.BudgetDetailInput, 0, len(r.Details))
	for _, d := range r.Details {
		out = append(out, d.ToInput())
	}
	return out
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
