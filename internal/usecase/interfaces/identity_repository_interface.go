package interfaces

import (
	"context"
	"errors"

	"budget_tracker/internal/domain/entities"
)

// ErrDuplicate is returned by repositories when a unique key is already taken.
var ErrDuplicate = errors.New("duplicate key")

// IIdentityRepository abstracts persistence for provisioned identities.
//
// Lookups return a zero Identity (ID == 0) and a nil error when nothing matches.
type IIdentityRepository interface {
	Create(ctx context.Context, identity entities.Identity) (entities.Identity, error)
	GetByID(ctx context.Context, id int64) (entities.Identity, error)
	GetByUsername(ctx context.Context, username string) (entities.Identity, error)
	FirstByRole(ctx context.Context, role entities.Role) (entities.Identity, error)
	List(ctx context.Context) ([]entities.Identity, error)
	Count(ctx context.Context) (int64, error)
}
