package entities

import "time"

// MaxProjectNameLength is the longest project name the store accepts, in characters.
const MaxProjectNameLength = 100

// Project groups budgets under a responsible manager.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	StartDate   time.Time `json:"start_date"`
	ManagerID   int64     `json:"manager_id"`
	ManagerName string    `json:"manager"`
	CreatedAt   time.Time `json:"created_at"`
}
