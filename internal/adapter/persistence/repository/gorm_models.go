package repository

import (
	"time"

	"budget_tracker/internal/domain/entities"
)

type identityModel struct {
	ID           int64     `gorm:"primaryKey"`
	Username     string    `gorm:"size:80;uniqueIndex;not null"`
	PasswordHash []byte    `gorm:"not null"`
	Role         string    `gorm:"size:32;not null;index"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (identityModel) TableName() string { return "users" }

type projectModel struct {
	ID        int64         `gorm:"primaryKey"`
	Name      string        `gorm:"size:100;uniqueIndex;not null"`
	StartDate time.Time     `gorm:"not null"`
	ManagerID int64         `gorm:"not null;index"`
	Manager   identityModel `gorm:"foreignKey:ManagerID"`
	CreatedAt time.Time     `gorm:"not null"`
}

func (projectModel) TableName() string { return "projects" }

type budgetModel struct {
	ID          int64               `gorm:"primaryKey"`
	ProjectID   int64               `gorm:"not null;index"`
	Project     projectModel        `gorm:"foreignKey:ProjectID"`
	CreatorID   int64               `gorm:"not null;index"`
	Creator     identityModel       `gorm:"foreignKey:CreatorID"`
	CreatedAt   time.Time           `gorm:"not null;index"`
	Status      string              `gorm:"size:20;not null;default:draft;index"`
	TotalAmount float64             `gorm:"not null;default:0"`
	ApproverID  *int64              `gorm:"index"`
	Approver    *identityModel      `gorm:"foreignKey:ApproverID"`
	ApprovedAt  *time.Time
	Details     []budgetDetailModel `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE"`
}

func (budgetModel) TableName() string { return "budgets" }

type budgetDetailModel struct {
	ID            int64   `gorm:"primaryKey"`
	BudgetID      int64   `gorm:"not null;index"`
	ItemType      string  `gorm:"size:20;not null"`
	ItemName      string  `gorm:"size:100;not null"`
	Specification string  `gorm:"size:200"`
	Unit          string  `gorm:"size:20"`
	Quantity      float64 `gorm:"not null;default:0"`
	UnitPrice     float64 `gorm:"not null;default:0"`
	Amount        float64 `gorm:"not null;default:0"`
}

func (budgetDetailModel) TableName() string { return "budget_details" }

// GormModels lists every table owned by the gorm repositories, in migration
// order.
func GormModels() []any {
	return []any{&identityModel{}, &projectModel{}, &budgetModel{}, &budgetDetailModel{}}
}

func toIdentityModel(i entities.Identity) identityModel {
	return identityModel{
		ID:           i.ID,
		Username:     i.Username,
		PasswordHash: i.PasswordHash,
		Role:         string(i.Role),
		CreatedAt:    i.CreatedAt.UTC(),
	}
}

func fromIdentityModel(m identityModel) entities.Identity {
	return entities.Identity{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         entities.Role(m.Role),
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func fromProjectModel(m projectModel) entities.Project {
	return entities.Project{
		ID:          m.ID,
		Name:        m.Name,
		StartDate:   m.StartDate.UTC(),
		ManagerID:   m.ManagerID,
		ManagerName: m.Manager.Username,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func toBudgetModel(b entities.Budget) budgetModel {
	m := budgetModel{
		ID:          b.ID,
		ProjectID:   b.ProjectID,
		CreatorID:   b.CreatorID,
		CreatedAt:   b.CreatedAt.UTC(),
		Status:      string(b.Status),
		TotalAmount: b.TotalAmount,
		ApproverID:  b.ApproverID,
	}
	if b.ApprovedAt != nil {
		ts := b.ApprovedAt.UTC()
		m.ApprovedAt = &ts
	}
	return m
}

func fromBudgetModel(m budgetModel) entities.Budget {
	b := entities.Budget{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		ProjectName: m.Project.Name,
		CreatorID:   m.CreatorID,
		CreatorName: m.Creator.Username,
		CreatedAt:   m.CreatedAt.UTC(),
		Status:      entities.BudgetStatus(m.Status),
		TotalAmount: m.TotalAmount,
		ApproverID:  m.ApproverID,
	}
	if m.Approver != nil {
		b.ApproverName = m.Approver.Username
	}
	if m.ApprovedAt != nil {
		ts := m.ApprovedAt.UTC()
		b.ApprovedAt = &ts
	}
	for _, d := range m.Details {
		b.Details = append(b.Details, fromBudgetDetailModel(d))
	}
	return b
}

func toBudgetDetailModel(budgetID int64, d entities.BudgetDetail) budgetDetailModel {
	return budgetDetailModel{
		ID:            d.ID,
		BudgetID:      budgetID,
		ItemType:      string(d.ItemType),
		ItemName:      d.ItemName,
		Specification: d.Specification,
		Unit:          d.Unit,
		Quantity:      d.Quantity,
		UnitPrice:     d.UnitPrice,
		Amount:        d.Amount,
	}
}

func fromBudgetDetailModel(m budgetDetailModel) entities.BudgetDetail {
	return entities.BudgetDetail{
		ID:            m.ID,
		BudgetID:      m.BudgetID,
		ItemType:      entities.ItemType(m.ItemType),
		ItemName:      m.ItemName,
		Specification: m.Specification,
		Unit:          m.Unit,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		Amount:        m.Amount,
	}
}
