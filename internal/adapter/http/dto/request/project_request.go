package request

import "strings"

type CreateProjectRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
}

func (r CreateProjectRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}
