package response

import (
	"gearshare/internal/pkg/localtime"
	"gearshare/internal/usecase/queries"
)

type RequestAnswerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"ownerId"`
}

type ItemRequestResponse struct {
	ID          int64                    `json:"id"`
	Description string                   `json:"description"`
	Created     localtime.LocalDateTime  `json:"created"`
	Items       []*RequestAnswerResponse `json:"items"`
}

func FromRequestView(view *queries.RequestView) *ItemRequestResponse {
	items := make([]*RequestAnswerResponse, 0, len(view.Items))
	for _, answer := range view.Items {
		items = append(items, &RequestAnswerResponse{
			ID:      answer.ItemID,
			Name:    answer.Name,
			OwnerID: answer.OwnerID,
		})
	}
	return &ItemRequestResponse{
		ID:          view.ID,
		Description: view.Description,
		Created:     localtime.Of(view.Created),
		Items:       items,
	}
}

func FromRequestViews(views []*queries.RequestView) []*ItemRequestResponse {
	out := make([]*ItemRequestResponse, 0, len(views))
	for _, view := range views {
		out = append(out, FromRequestView(view))
	}
	return out
}
