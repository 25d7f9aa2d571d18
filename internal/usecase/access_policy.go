package usecase

import (
	"errors"

	"budget_tracker/internal/domain/entities"
)

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrForbidden              = errors.New("forbidden")
)

// Action names an operation gated by the access policy.
type Action string

const (
	ActionViewProjects       Action = "projects:view"
	ActionCreateProject      Action = "projects:create"
	ActionViewBudgets        Action = "budgets:view"
	ActionCreateBudget       Action = "budgets:create"
	ActionUpdateBudgetStatus Action = "budgets:update_status"
	ActionViewStatistics     Action = "statistics:view"
	ActionAdminAccess        Action = "admin:access"
)

var anyRole = map[entities.Role]bool{
	entities.RoleBudgeter:       true,
	entities.RoleProjectManager: true,
	entities.RoleLeader:         true,
}

var approvers = map[entities.Role]bool{
	entities.RoleBudgeter:       false,
	entities.RoleProjectManager: true,
	entities.RoleLeader:         true,
}

// accessPolicy lists, per action, which roles may perform it. Actions missing
// from the table are denied.
var accessPolicy = map[Action]map[entities.Role]bool{
	ActionViewProjects:       anyRole,
	ActionCreateProject:      anyRole,
	ActionViewBudgets:        anyRole,
	ActionCreateBudget:       anyRole,
	ActionViewStatistics:     anyRole,
	ActionUpdateBudgetStatus: approvers,
	ActionAdminAccess:        approvers,
}

// CanPerform reports whether identity may perform action. A nil identity is an
// anonymous caller and may perform nothing.
func CanPerform(identity *entities.Identity, action Action) bool {
	if identity == nil {
		return false
	}
	return accessPolicy[action][identity.Role]
}

// Authorize is CanPerform with the failure classified: ErrAuthenticationRequired
// for anonymous callers, ErrForbidden for roles the table does not allow.
func Authorize(identity *entities.Identity, action Action) error {
	if identity == nil {
		return ErrAuthenticationRequired
	}
	if !CanPerform(identity, action) {
		return ErrForbidden
	}
	return nil
}
