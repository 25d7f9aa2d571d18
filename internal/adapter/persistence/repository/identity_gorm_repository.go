package repository

import (
	"context"
	"errors"

	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// IdentityGormRepository persists identities in the relational store.
type IdentityGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IIdentityRepository = (*IdentityGormRepository)(nil)

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{db: db}
}

func (r *IdentityGormRepository) Create(ctx context.Context, identity entities.Identity) (entities.Identity, error) {
	m := toIdentityModel(identity)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Identity{}, interfaces.ErrDuplicate
		}
		return entities.Identity{}, err
	}
	return fromIdentityModel(m), nil
}

func (r *IdentityGormRepository) GetByID(ctx context.Context, id int64) (entities.Identity, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *IdentityGormRepository) GetByUsername(ctx context.Context, username string) (entities.Identity, error) {
	return r.first(r.db.WithContext(ctx).Where("username = ?", username))
}

func (r *IdentityGormRepository) FirstByRole(ctx context.Context, role entities.Role) (entities.Identity, error) {
	return r.first(r.db.WithContext(ctx).Where("role = ?", string(role)).Order("id"))
}

func (r *IdentityGormRepository) List(ctx context.Context) ([]entities.Identity, error) {
	var rows []identityModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Identity, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromIdentityModel(m))
	}
	return out, nil
}

func (r *IdentityGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&identityModel{}).Count(&n).Error
	return n, err
}

func (r *IdentityGormRepository) first(q *gorm.DB) (entities.Identity, error) {
	var m identityModel
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Identity{}, nil
		}
		return entities.Identity{}, err
	}
	return fromIdentityModel(m), nil
}
