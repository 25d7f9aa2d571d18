package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"budget_tracker/internal/domain/entities"
	"budget_tracker/internal/usecase/interfaces"
)

var (
	ErrProjectIDRequired     = errors.New("project id is required")
	ErrBudgetDetailsRequired = errors.New("budget details are required")
	ErrInvalidBudgetDetail   = errors.New("invalid budget detail")
	ErrInvalidBudgetID       = errors.New("invalid budget id")
	ErrInvalidBudgetStatus   = errors.New("invalid budget status")
	ErrBudgetNotFound        = errors.New("budget not found")
)

// BudgetDetailInput is one requested line item. Missing numbers arrive as 0 and
// a missing item type as Material.
type BudgetDetailInput struct {
	ItemType      entities.ItemType
	ItemName      string
	Specification string
	Unit          string
	Quantity      float64
	UnitPrice     float64
}

// IBudgetUseCase exposes the budget ledger.
type IBudgetUseCase interface {
	CreateBudget(ctx context.Context, actor *entities.Identity, projectID int64, details []BudgetDetailInput) (entities.Budget, error)
	GetBudget(ctx context.Context, actor *entities.Identity, id int64) (entities.Budget, error)
	ListBudgets(ctx context.Context, actor *entities.Identity, status *entities.BudgetStatus) ([]entities.Budget, error)
	UpdateStatus(ctx context.Context, actor *entities.Identity, id int64, status entities.BudgetStatus) (entities.Budget, error)
}

type BudgetUseCase struct {
	repo     interfaces.IBudgetRepository
	projects interfaces.IProjectRepository
	events   interfaces.IBudgetEventPublisher
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

// NewBudgetUseCase wires the ledger. events may be nil when no broker is
// configured.
func NewBudgetUseCase(repo interfaces.IBudgetRepository, projects interfaces.IProjectRepository, events interfaces.IBudgetEventPublisher) *BudgetUseCase {
	return &BudgetUseCase{repo: repo, projects: projects, events: events}
}

// CreateBudget prices every detail, sums the total and stores the budget in
// Pending together with its details.
func (u *BudgetUseCase) CreateBudget(ctx context.Context, actor *entities.Identity, projectID int64, details []BudgetDetailInput) (entities.Budget, error) {
	if err := Authorize(actor, ActionCreateBudget); err != nil {
		return entities.Budget{}, err
	}
	if projectID <= 0 {
		return entities.Budget{}, ErrProjectIDRequired
	}
	if len(details) == 0 {
		return entities.Budget{}, ErrBudgetDetailsRequired
	}

	lines := make([]entities.BudgetDetail, 0, len(details))
	for i, in := range details {
		d, err := buildDetail(i, in)
		if err != nil {
			return entities.Budget{}, err
		}
		lines = append(lines, d)
	}
	b := entities.Budget{Details: lines}
	if err := b.PriceDetails(); err != nil {
		return entities.Budget{}, fmt.Errorf("%w: %v", ErrInvalidBudgetDetail, err)
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Budget{}, err
	}
	if project.ID == 0 {
		return entities.Budget{}, ErrProjectNotFound
	}

	b.ProjectID = project.ID
	b.ProjectName = project.Name
	b.CreatorID = actor.ID
	b.CreatorName = actor.Username
	b.CreatedAt = time.Now().UTC()
	b.Status = entities.BudgetStatusPending

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		log.Printf("[budget][usecase] create failed project_id=%d err=%v", projectID, err)
		return entities.Budget{}, err
	}
	log.Printf("[budget][usecase] created budget_id=%d project_id=%d details=%d total=%.2f", created.ID, created.ProjectID, len(created.Details), created.TotalAmount)

	if u.events != nil {
		if err := u.events.BudgetCreated(ctx, created); err != nil {
			log.Printf("[budget][usecase] publish created failed budget_id=%d err=%v", created.ID, err)
		}
	}
	return created, nil
}

func (u *BudgetUseCase) GetBudget(ctx context.Context, actor *entities.Identity, id int64) (entities.Budget, error) {
	if err := Authorize(actor, ActionViewBudgets); err != nil {
		return entities.Budget{}, err
	}
	if id <= 0 {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == 0 {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) ListBudgets(ctx context.Context, actor *entities.Identity, status *entities.BudgetStatus) ([]entities.Budget, error) {
	if err := Authorize(actor, ActionViewBudgets); err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, ErrInvalidBudgetStatus
	}
	return u.repo.List(ctx, entities.BudgetFilter{Status: status})
}

// UpdateStatus moves a budget to status. Only approvers may call it, whatever
// the requested status; Draft is never a valid target. Setting the current
// status again succeeds without changes.
func (u *BudgetUseCase) UpdateStatus(ctx context.Context, actor *entities.Identity, id int64, status entities.BudgetStatus) (entities.Budget, error) {
	if err := Authorize(actor, ActionUpdateBudgetStatus); err != nil {
		return entities.Budget{}, err
	}
	if !status.IsSettable() {
		return entities.Budget{}, ErrInvalidBudgetStatus
	}
	if id <= 0 {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	var previous entities.BudgetStatus
	now := time.Now().UTC()
	updated, err := u.repo.UpdateStatus(ctx, id, func(b *entities.Budget) error {
		previous = b.Status
		b.TransitionTo(status, *actor, now)
		return nil
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == 0 {
		return entities.Budget{}, ErrBudgetNotFound
	}

	log.Printf("[budget][usecase] status updated budget_id=%d from=%s to=%s actor_id=%d", updated.ID, previous, updated.Status, actor.ID)

	if u.events != nil && previous != updated.Status {
		if err := u.events.BudgetStatusChanged(ctx, updated, previous); err != nil {
			log.Printf("[budget][usecase] publish status change failed budget_id=%d err=%v", updated.ID, err)
		}
	}
	return updated, nil
}

func buildDetail(index int, in BudgetDetailInput) (entities.BudgetDetail, error) {
	itemType := in.ItemType
	if itemType == "" {
		itemType = entities.ItemTypeMaterial
	}
	if !itemType.IsValid() {
		return entities.BudgetDetail{}, fmt.Errorf("%w: detail %d: unknown item_type", ErrInvalidBudgetDetail, index)
	}
	name := strings.TrimSpace(in.ItemName)
	if name == "" {
		return entities.BudgetDetail{}, fmt.Errorf("%w: detail %d: item_name is required", ErrInvalidBudgetDetail, index)
	}
	if utf8.RuneCountInString(name) > entities.MaxItemNameLength ||
		utf8.RuneCountInString(in.Specification) > entities.MaxSpecificationLength ||
		utf8.RuneCountInString(in.Unit) > entities.MaxUnitLength {
		return entities.BudgetDetail{}, fmt.Errorf("%w: detail %d: item_name, specification or unit too long", ErrInvalidBudgetDetail, index)
	}
	if math.IsNaN(in.Quantity) || math.IsNaN(in.UnitPrice) || math.IsInf(in.Quantity, 0) || math.IsInf(in.UnitPrice, 0) {
		return entities.BudgetDetail{}, fmt.Errorf("%w: detail %d: quantity and unit_price must be finite numbers", ErrInvalidBudgetDetail, index)
	}
	if in.Quantity < 0 || in.UnitPrice < 0 {
		return entities.BudgetDetail{}, fmt.Errorf("%w: detail %d: quantity and unit_price must not be negative", ErrInvalidBudgetDetail, index)
	}
	return entities.BudgetDetail{
		ItemType:      itemType,
		ItemName:      name,
		Specification: in.Specification,
		Unit:          in.Unit,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
	}, nil
}
