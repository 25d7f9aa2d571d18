package usecase

import (
	"errors"
	"testing"

	"budget_tracker/internal/domain/entities"
)

func TestAccessPolicy(t *testing.T) {
	leader := &entities.Identity{ID: 1, Username: "admin", Role: entities.RoleLeader}
	budgeter := &entities.Identity{ID: 2, Username: "budgeter", Role: entities.RoleBudgeter}
	manager := &entities.Identity{ID: 3, Username: "manager", Role: entities.RoleProjectManager}

	cases := []struct {
		action Action
		who    *entities.Identity
		allow  bool
	}{
		{ActionViewProjects, budgeter, true},
		{ActionCreateProject, budgeter, true},
		{ActionViewBudgets, budgeter, true},
		{ActionCreateBudget, budgeter, true},
		{ActionViewStatistics, budgeter, true},
		{ActionUpdateBudgetStatus, budgeter, false},
		{ActionUpdateBudgetStatus, manager, true},
		{ActionUpdateBudgetStatus, leader, true},
		{ActionAdminAccess, budgeter, false},
		{ActionAdminAccess, manager, true},
		{ActionAdminAccess, leader, true},
		{ActionViewProjects, nil, false},
		{Action("unknown"), leader, false},
	}

	for _, tc := range cases {
		name := string(tc.action) + "/anonymous"
		if tc.who != nil {
			name = string(tc.action) + "/" + tc.who.Username
		}
		t.Run(name, func(t *testing.T) {
			if got := CanPerform(tc.who, tc.action); got != tc.allow {
				t.Fatalf("expected %v got %v", tc.allow, got)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	if err := Authorize(nil, ActionViewBudgets); !errors.Is(err, ErrAuthenticationRequired) {
		t.Fatalf("expected ErrAuthenticationRequired, got %v", err)
	}
	budgeter := &entities.Identity{ID: 2, Role: entities.RoleBudgeter}
	if err := Authorize(budgeter, ActionUpdateBudgetStatus); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := Authorize(&entities.Identity{ID: 9, Role: entities.Role("ghost")}, ActionViewBudgets); !errors.Is(err, ErrForbidden) {
		t.Fatalf("unknown roles must be denied, got %v", err)
	}
	if err := Authorize(budgeter, ActionCreateBudget); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
