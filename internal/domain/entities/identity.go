package entities

import "time"

// Role is the authorization tag carried by every identity.
type Role string

const (
	RoleBudgeter       Role = "budgeter"
	RoleProjectManager Role = "project_manager"
	RoleLeader         Role = "leader"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleBudgeter, RoleProjectManager, RoleLeader:
		return true
	}
	return false
}

// Identity is a provisioned user account.
//
// PasswordHash holds the bcrypt form of the password and never leaves the
// process.
type Identity struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
