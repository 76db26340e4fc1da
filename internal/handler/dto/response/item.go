package response

import (
	"lendit/internal/usecase/queries"
)

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

// BookingRefResponse is the shortened booking shape embedded in item
// views.
type BookingRefResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingRefResponse `json:"lastBooking"`
	NextBooking *BookingRefResponse `json:"nextBooking"`
	Comments    []CommentResponse   `json:"comments"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Available:   v.Available,
	}
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, len(views))
	for i, v := range views {
		out[i] = FromItemView(v)
	}
	return out
}

func FromItemDetailView(v *queries.ItemDetailView) *ItemDetailResponse {
	resp := &ItemDetailResponse{
		ItemResponse: *FromItemView(&v.ItemView),
		Comments:     FromCommentViews(v.Comments),
	}
	if v.LastBooking != nil {
		resp.LastBooking = &BookingRefResponse{ID: v.LastBooking.ID, BookerID: v.LastBooking.BookerID}
	}
	if v.NextBooking != nil {
		resp.NextBooking = &BookingRefResponse{ID: v.NextBooking.ID, BookerID: v.NextBooking.BookerID}
	}
	return resp
}

func FromItemDetailViews(views []*queries.ItemDetailView) []*ItemDetailResponse {
	out := make([]*ItemDetailResponse, len(views))
	for i, v := range views {
		out[i] = FromItemDetailView(v)
	}
	return out
}
