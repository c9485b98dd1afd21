package response

import (
	"gearshare/internal/pkg/localtime"
	"gearshare/internal/usecase/queries"
)

type BookerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookedItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64                   `json:"id"`
	Start  localtime.LocalDateTime `json:"start"`
	End    localtime.LocalDateTime `json:"end"`
	Status string                  `json:"status"`
	Booker BookerRef               `json:"booker"`
	Item   BookedItemRef           `json:"item"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     view.ID,
		Start:  localtime.Of(view.Start),
		End:    localtime.Of(view.End),
		Status: view.Status.String(),
		Booker: BookerRef{ID: view.Booker.ID, Name: view.Booker.Name},
		Item:   BookedItemRef{ID: view.Item.ID, Name: view.Item.Name},
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(views))
	for _, view := range views {
		out = append(out, FromBookingView(view))
	}
	return out
}
