package response

import (
	"gearshare/internal/pkg/localtime"
	"gearshare/internal/usecase/queries"
)

// BookingSummary is the compact last/next slot embedded in owner item views.
type BookingSummary struct {
	ID       int64                   `json:"id"`
	BookerID int64                   `json:"bookerId"`
	Start    localtime.LocalDateTime `json:"start"`
	End      localtime.LocalDateTime `json:"end"`
	Status   string                  `json:"status"`
}

type CommentResponse struct {
	ID         int64                   `json:"id"`
	Text       string                  `json:"text"`
	AuthorName string                  `json:"authorName"`
	ItemID     int64                   `json:"itemId"`
	Created    localtime.LocalDateTime `json:"created"`
}

type ItemResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Available   bool               `json:"available"`
	LastBooking *BookingSummary    `json:"lastBooking"`
	NextBooking *BookingSummary    `json:"nextBooking"`
	Comments    []*CommentResponse `json:"comments"`
}

func FromItemView(view *queries.ItemView) *ItemResponse {
	resp := &ItemResponse{
		ID:          view.ID,
		Name:        view.Name,
		Description: view.Description,
		Available:   view.Available,
		LastBooking: fromBookingRef(view.LastBooking),
		NextBooking: fromBookingRef(view.NextBooking),
		Comments:    FromCommentViews(view.Comments),
	}
	return resp
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, 0, len(views))
	for _, view := range views {
		out = append(out, FromItemView(view))
	}
	return out
}

func FromCommentView(view *queries.CommentView) *CommentResponse {
	return &CommentResponse{
		ID:         view.ID,
		Text:       view.Text,
		AuthorName: view.AuthorName,
		ItemID:     view.ItemID,
		Created:    localtime.Of(view.Created),
	}
}

func FromCommentViews(views []*queries.CommentView) []*CommentResponse {
	out := make([]*CommentResponse, 0, len(views))
	for _, view := range views {
		out = append(out, FromCommentView(view))
	}
	return out
}

func fromBookingRef(ref *queries.BookingRef) *BookingSummary {
	if ref == nil {
		return nil
	}
	return &BookingSummary{
		ID:       ref.ID,
		BookerID: ref.BookerID,
		Start:    localtime.Of(ref.Start),
		End:      localtime.Of(ref.End),
		Status:   ref.Status.String(),
	}
}
