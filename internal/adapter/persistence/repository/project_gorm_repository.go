package repository

import (
	"context"
	"errors"

	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ProjectGormRepository persists projects in the relational store. The unique
// index on name backs the registry's uniqueness rule.
type ProjectGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IProjectRepository = (*ProjectGormRepository)(nil)

func NewProjectGormRepository(db *gorm.DB) *ProjectGormRepository {
	return &ProjectGormRepository{db: db}
}

func (r *ProjectGormRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	m := projectModel{
		Name:      p.Name,
		StartDate: p.StartDate.UTC(),
		ManagerID: p.ManagerID,
		CreatedAt: p.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Omit("Manager").Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Project{}, interfaces.ErrDuplicate
		}
		return entities.Project{}, err
	}
	p.ID = m.ID
	return p, nil
}

func (r *ProjectGormRepository) GetByID(ctx context.Context, id int64) (entities.Project, error) {
	return r.first(r.db.WithContext(ctx).Where("projects.id = ?", id))
}

func (r *ProjectGormRepository) GetByName(ctx context.Context, name string) (entities.Project, error) {
	return r.first(r.db.WithContext(ctx).Where("projects.name = ?", name))
}

func (r *ProjectGormRepository) List(ctx context.Context) ([]entities.Project, error) {
	var rows []projectModel
	if err := r.db.WithContext(ctx).Joins("Manager").Order("projects.id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Project, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromProjectModel(m))
	}
	return out, nil
}

func (r *ProjectGormRepository) first(q *gorm.DB) (entities.Project, error) {
	var m projectModel
	if err := q.Joins("Manager").First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return fromProjectModel(m), nil
}
