package response

import (
	"budget_tracker/internal/adapter/http/dto/labels"
	"budget_tracker/internal/domain/entities"
)

type IdentityResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Message string           `json:"message"`
	User    IdentityResponse `json:"user"`
	Token   string           `json:"token"`
}

func FromIdentity(i entities.Identity) IdentityResponse {
	return IdentityResponse{
		ID:       i.ID,
		Username: i.Username,
		Role:     labels.Role(i.Role),
	}
}

func FromIdentities(list []entities.Identity) []IdentityResponse {
	out := make([]IdentityResponse, 0, len(list))
	for _, i := range list {
		out = append(out, FromIdentity(i))
	}
	return out
}
