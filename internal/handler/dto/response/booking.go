package response

import (
	"time"

	"lendit/internal/usecase/queries"
)

type BookerRef struct {
	ID int64 `json:"id"`
}

type BookedItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64         `json:"id"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status string        `json:"status"`
	Booker BookerRef     `json:"booker"`
	Item   BookedItemRef `json:"item"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:     v.ID,
		Start:  v.Start,
		End:    v.End,
		Status: v.Status,
		Booker: BookerRef{ID: v.BookerID},
		Item:   BookedItemRef{ID: v.ItemID, Name: v.ItemName},
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, v := range views {
		out[i] = FromBookingView(v)
	}
	return out
}
