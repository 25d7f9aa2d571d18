package interfaces

import (
	"context"

	"budget_tracker/internal/domain/entities"
)

// IProjectRepository abstracts persistence for projects.
//
// Create returns ErrDuplicate when the name is taken. Lookups return a zero
// Project when nothing matches. List is ordered by creation.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id int64) (entities.Project, error)
	GetByName(ctx context.Context, name string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
}
