package response

import (
	"gearshare/internal/usecase/queries"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromUserView(view *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:    view.ID,
		Name:  view.Name,
		Email: view.Email,
	}
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, 0, len(views))
	for _, view := range views {
		out = append(out, FromUserView(view))
	}
	return out
}
