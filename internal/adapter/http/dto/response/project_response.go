package response

import "budget_tracker/internal/domain/entities"

type ProjectResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	Manager   string `json:"manager"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate.Format(DateLayout),
		Manager:   p.ManagerName,
	}
}

func FromProjects(list []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProject(p))
	}
	return out
}

type ProjectCreatedResponse struct {
	Message string `json:"message"`
	ProjectResponse
}
