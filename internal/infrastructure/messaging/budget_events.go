package messaging

import (
	"encoding/json"
	"time"

	"budget_tracker/internal/domain/entities"
)

const (
	RoutingKeyBudgetCreated       = "budget.created"
	RoutingKeyBudgetStatusChanged = "budget.status_changed"
)

// BudgetEvent is the JSON body of every budget message.
type BudgetEvent struct {
	Event          string    `json:"event"`
	BudgetID       int64     `json:"budget_id"`
	ProjectID      int64     `json:"project_id"`
	ProjectName    string    `json:"project_name"`
	CreatorID      int64     `json:"creator_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	TotalAmount    float64   `json:"total_amount"`
	ApproverName   string    `json:"approver_name,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newBudgetEvent(event string, b entities.Budget, at time.Time) BudgetEvent {
	return BudgetEvent{
		Event:        event,
		BudgetID:     b.ID,
		ProjectID:    b.ProjectID,
		ProjectName:  b.ProjectName,
		CreatorID:    b.CreatorID,
		Status:       string(b.Status),
		TotalAmount:  b.TotalAmount,
		ApproverName: b.ApproverName,
		OccurredAt:   at.UTC(),
	}
}

func (e BudgetEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
