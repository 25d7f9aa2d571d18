package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIdentityNotFound   = errors.New("identity not found")
)

// IIdentityUseCase exposes the identity and role store.
type IIdentityUseCase interface {
	Authenticate(ctx context.Context, username, password string) (entities.Identity, error)
	RoleOf(ctx context.Context, identityID int64) (entities.Role, error)
	ListIdentities(ctx context.Context, actor *entities.Identity) ([]entities.Identity, error)
}

type IdentityUseCase struct {
	repo   interfaces.IIdentityRepository
	hasher interfaces.IPasswordHasher
}

var _ IIdentityUseCase = (*IdentityUseCase)(nil)

func NewIdentityUseCase(repo interfaces.IIdentityRepository, hasher interfaces.IPasswordHasher) *IdentityUseCase {
	return &IdentityUseCase{repo: repo, hasher: hasher}
}

// Authenticate verifies username and password. Unknown usernames and wrong
// passwords fail the same way.
func (u *IdentityUseCase) Authenticate(ctx context.Context, username, password string) (entities.Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.Identity{}, ErrInvalidCredentials
	}

	identity, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return entities.Identity{}, err
	}
	if identity.ID == 0 {
		log.Printf("[identity][usecase] login rejected reason=unknown_user")
		return entities.Identity{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(identity.PasswordHash, password); err != nil {
		log.Printf("[identity][usecase] login rejected reason=bad_password identity_id=%d", identity.ID)
		return entities.Identity{}, ErrInvalidCredentials
	}

	log.Printf("[identity][usecase] login ok identity_id=%d role=%s", identity.ID, identity.Role)
	return identity, nil
}

func (u *IdentityUseCase) RoleOf(ctx context.Context, identityID int64) (entities.Role, error) {
	if identityID <= 0 {
		return "", ErrIdentityNotFound
	}
	identity, err := u.repo.GetByID(ctx, identityID)
	if err != nil {
		return "", err
	}
	if identity.ID == 0 {
		return "", ErrIdentityNotFound
	}
	return identity.Role, nil
}

func (u *IdentityUseCase) ListIdentities(ctx context.Context, actor *entities.Identity) ([]entities.Identity, error) {
	if err := Authorize(actor, ActionAdminAccess); err != nil {
		return nil, err
	}
	return u.repo.List(ctx)
}
