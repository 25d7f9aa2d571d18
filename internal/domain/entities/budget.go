package entities

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Column limits for budget detail text, in characters.
const (
	MaxItemNameLength      = 100
	MaxSpecificationLength = 200
	MaxUnitLength          = 20
)

// ErrAmountOutOfRange reports a detail amount or total that is not a finite number.
var ErrAmountOutOfRange = errors.New("amount out of range")

// BudgetStatus represents the approval lifecycle of a budget.
//
// Draft is the storage default but nothing creates or moves a budget into it;
// new budgets start in Pending.
type BudgetStatus string

const (
	BudgetStatusDraft    BudgetStatus = "draft"
	BudgetStatusPending  BudgetStatus = "pending"
	BudgetStatusApproved BudgetStatus = "approved"
	BudgetStatusRejected BudgetStatus = "rejected"
)

func (s BudgetStatus) IsValid() bool {
	switch s {
	case BudgetStatusDraft, BudgetStatusPending, BudgetStatusApproved, BudgetStatusRejected:
		return true
	}
	return false
}

// IsSettable reports whether s may be the target of a status update.
func (s BudgetStatus) IsSettable() bool {
	switch s {
	case BudgetStatusPending, BudgetStatusApproved, BudgetStatusRejected:
		return true
	}
	return false
}

// ItemType classifies a budget line item.
type ItemType string

const (
	ItemTypeMaterial  ItemType = "material"
	ItemTypeLabor     ItemType = "labor"
	ItemTypeEquipment ItemType = "equipment"
	ItemTypeOther     ItemType = "other"
)

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeMaterial, ItemTypeLabor, ItemTypeEquipment, ItemTypeOther:
		return true
	}
	return false
}

// BudgetDetail is a single priced line item owned by a budget.
type BudgetDetail struct {
	ID            int64    `json:"id"`
	BudgetID      int64    `json:"budget_id"`
	ItemType      ItemType `json:"item_type"`
	ItemName      string   `json:"item_name"`
	Specification string   `json:"specification"`
	Unit          string   `json:"unit"`
	Quantity      float64  `json:"quantity"`
	UnitPrice     float64  `json:"unit_price"`
	Amount        float64  `json:"amount"`
}

// Budget is a priced proposal for a project.
//
// TotalAmount is always the sum of the detail amounts and each detail amount is
// its quantity times its unit price. Both are computed once, at creation.
// ProjectName, CreatorName and ApproverName are resolved by the repositories.
type Budget struct {
	ID           int64          `json:"id"`
	ProjectID    int64          `json:"project_id"`
	ProjectName  string         `json:"project_name"`
	CreatorID    int64          `json:"creator_id"`
	CreatorName  string         `json:"creator_name"`
	CreatedAt    time.Time      `json:"created_at"`
	Status       BudgetStatus   `json:"status"`
	TotalAmount  float64        `json:"total_amount"`
	ApproverID   *int64         `json:"approver_id,omitempty"`
	ApproverName string         `json:"approver_name,omitempty"`
	ApprovedAt   *time.Time     `json:"approved_at,omitempty"`
	Details      []BudgetDetail `json:"details,omitempty"`
}

// PriceDetails sets every detail amount and the budget total. It fails when an
// amount or the total overflows.
func (b *Budget) PriceDetails() error {
	total := 0.0
	for i := range b.Details {
		amount := b.Details[i].Quantity * b.Details[i].UnitPrice
		if !isFinite(amount) {
			return fmt.Errorf("%w: detail %d", ErrAmountOutOfRange, i)
		}
		b.Details[i].Amount = amount
		total += amount
	}
	if !isFinite(total) {
		return fmt.Errorf("%w: total", ErrAmountOutOfRange)
	}
	b.TotalAmount = total
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// TransitionTo moves the budget to status on behalf of approver.
//
// Entering Approved records the approver and time; staying in Approved keeps
// the first approval; leaving Approved clears both.
func (b *Budget) TransitionTo(status BudgetStatus, approver Identity, at time.Time) {
	switch {
	case status == BudgetStatusApproved && b.Status != BudgetStatusApproved:
		id := approver.ID
		ts := at.UTC()
		b.ApproverID = &id
		b.ApproverName = approver.Username
		b.ApprovedAt = &ts
	case status != BudgetStatusApproved:
		b.ApproverID = nil
		b.ApproverName = ""
		b.ApprovedAt = nil
	}
	b.Status = status
}

// BudgetFilter narrows budget listings. A nil Status matches every budget.
type BudgetFilter struct {
	Status *BudgetStatus
}

// BudgetTotalFilter selects the budgets summed by the statistics queries.
// Zero times leave that side of the creation window open.
type BudgetTotalFilter struct {
	Status      *BudgetStatus
	CreatedFrom time.Time
	CreatedTo   time.Time
}

// Matches reports whether b falls inside the filter.
func (f BudgetTotalFilter) Matches(b Budget) bool {
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if !f.CreatedFrom.IsZero() && b.CreatedAt.Before(f.CreatedFrom) {
		return false
	}
	if !f.CreatedTo.IsZero() && !b.CreatedAt.Before(f.CreatedTo) {
		return false
	}
	return true
}
