package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase/interfaces"
)

// DateLayout is the calendar date format used for project start dates.
const DateLayout = "2006-01-02"

var (
	ErrProjectNameRequired = errors.New("project name is required")
	ErrProjectNameTooLong  = fmt.Errorf("project name exceeds %d characters", entities.MaxProjectNameLength)
	ErrInvalidStartDate    = errors.New("invalid start date, expected YYYY-MM-DD")
	ErrProjectNameTaken    = errors.New("project name already exists")
	ErrProjectNotFound     = errors.New("project not found")
)

// IProjectUseCase exposes the project registry.
type IProjectUseCase interface {
	CreateProject(ctx context.Context, actor *entities.Identity, name, startDate string) (entities.Project, error)
	ListProjects(ctx context.Context, actor *entities.Identity) ([]entities.Project, error)
}

type ProjectUseCase struct {
	repo       interfaces.IProjectRepository
	identities interfaces.IIdentityRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, identities interfaces.IIdentityRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, identities: identities}
}

// CreateProject registers a project under a unique name. An empty startDate
// means today (UTC).
func (u *ProjectUseCase) CreateProject(ctx context.Context, actor *entities.Identity, name, startDate string) (entities.Project, error) {
	if err := Authorize(actor, ActionCreateProject); err != nil {
		return entities.Project{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Project{}, ErrProjectNameRequired
	}
	if utf8.RuneCountInString(name) > entities.MaxProjectNameLength {
		return entities.Project{}, ErrProjectNameTooLong
	}

	start, err := parseStartDate(startDate)
	if err != nil {
		return entities.Project{}, err
	}

	if existing, err := u.repo.GetByName(ctx, name); err != nil {
		return entities.Project{}, err
	} else if existing.ID != 0 {
		return entities.Project{}, ErrProjectNameTaken
	}

	manager, err := u.resolveManager(ctx, *actor)
	if err != nil {
		return entities.Project{}, err
	}

	p := entities.Project{
		Name:        name,
		StartDate:   start,
		ManagerID:   manager.ID,
		ManagerName: manager.Username,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicate) {
			return entities.Project{}, ErrProjectNameTaken
		}
		return entities.Project{}, err
	}

	log.Printf("[project][usecase] created project_id=%d manager_id=%d actor_id=%d", created.ID, created.ManagerID, actor.ID)
	return created, nil
}

func (u *ProjectUseCase) ListProjects(ctx context.Context, actor *entities.Identity) ([]entities.Project, error) {
	if err := Authorize(actor, ActionViewProjects); err != nil {
		return nil, err
	}
	return u.repo.List(ctx)
}

// resolveManager picks the acting project manager, else the first project
// manager on record, else the actor.
func (u *ProjectUseCase) resolveManager(ctx context.Context, actor entities.Identity) (entities.Identity, error) {
	if actor.Role == entities.RoleProjectManager {
		return actor, nil
	}
	manager, err := u.identities.FirstByRole(ctx, entities.RoleProjectManager)
	if err != nil {
		return entities.Identity{}, err
	}
	if manager.ID == 0 {
		return actor, nil
	}
	return manager, nil
}

func parseStartDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, ErrInvalidStartDate
	}
	return t, nil
}
