package repository

import (
	"context"
	"errors"

	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetGormRepository persists budgets and their details in the relational
// store.
type BudgetGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IBudgetRepository = (*BudgetGormRepository)(nil)

func NewBudgetGormRepository(db *gorm.DB) *BudgetGormRepository {
	return &BudgetGormRepository{db: db}
}

// Create inserts the budget row and every detail row in one transaction.
func (r *BudgetGormRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toBudgetModel(b)
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}

		details := make([]budgetDetailModel, 0, len(b.Details))
		for _, d := range b.Details {
			details = append(details, toBudgetDetailModel(m.ID, d))
		}
		if len(details) > 0 {
			if err := tx.Create(&details).Error; err != nil {
				return err
			}
		}

		b.ID = m.ID
		for i := range b.Details {
			b.Details[i].ID = details[i].ID
			b.Details[i].BudgetID = m.ID
		}
		return nil
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetGormRepository) GetByID(ctx context.Context, id int64) (entities.Budget, error) {
	var m budgetModel
	err := r.withNames(r.db.WithContext(ctx)).
		Preload("Details", func(db *gorm.DB) *gorm.DB { return db.Order("budget_details.id") }).
		Where("budgets.id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	return fromBudgetModel(m), nil
}

func (r *BudgetGormRepository) List(ctx context.Context, filter entities.BudgetFilter) ([]entities.Budget, error) {
	q := r.withNames(r.db.WithContext(ctx)).Order("budgets.id")
	if filter.Status != nil {
		q = q.Where("budgets.status = ?", string(*filter.Status))
	}

	var rows []budgetModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Budget, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromBudgetModel(m))
	}
	return out, nil
}

// UpdateStatus locks the budget row, applies mutate and writes back the status
// and approval columns. Details and totals are never written.
func (r *BudgetGormRepository) UpdateStatus(ctx context.Context, id int64, mutate interfaces.BudgetMutation) (entities.Budget, error) {
	var out entities.Budget
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m budgetModel
		err := r.withNames(tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "budgets"}})).
			Where("budgets.id = ?", id).
			First(&m).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		b := fromBudgetModel(m)
		if err := mutate(&b); err != nil {
			return err
		}

		next := toBudgetModel(b)
		err = tx.Model(&budgetModel{}).Where("id = ?", id).Updates(map[string]any{
			"status":      next.Status,
			"approver_id": next.ApproverID,
			"approved_at": next.ApprovedAt,
		}).Error
		if err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return out, nil
}

func (r *BudgetGormRepository) SumTotal(ctx context.Context, filter entities.BudgetTotalFilter) (float64, error) {
	q := r.db.WithContext(ctx).Model(&budgetModel{})
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if !filter.CreatedFrom.IsZero() {
		q = q.Where("created_at >= ?", filter.CreatedFrom.UTC())
	}
	if !filter.CreatedTo.IsZero() {
		q = q.Where("created_at < ?", filter.CreatedTo.UTC())
	}

	var total float64
	if err := q.Select("COALESCE(SUM(total_amount), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *BudgetGormRepository) withNames(q *gorm.DB) *gorm.DB {
	return q.Joins("Project").Joins("Creator").Joins("Approver")
}
