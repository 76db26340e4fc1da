package queries

import (
	"time"
)

// Read models (DTO for read side)

type BookingView struct {
	ID          int64     `json:"id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
	BookerID    int64     `json:"booker_id"`
	ItemID      int64     `json:"item_id"`
	ItemName    string    `json:"item_name"`
	ItemOwnerID int64     `json:"item_owner_id"`
}

type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner_id"`
}

type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

// BookingRef is the shortened last/next booking shape item views carry.
type BookingRef struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"booker_id"`
}

// ItemDetailView is an item enriched with its booking projection and
// comments for detail/listing rendering.
type ItemDetailView struct {
	ItemView
	LastBooking *BookingRef   `json:"last_booking,omitempty"`
	NextBooking *BookingRef   `json:"next_booking,omitempty"`
	Comments    []CommentView `json:"comments"`
}

// Page is zero-based offset pagination shared by all list queries.
type Page struct {
	From int
	Size int
}

func NewPage(from, size int) Page {
	if from < 0 {
		from = 0
	}
	if size < 1 {
		size = 10
	}
	return Page{From: from, Size: size}
}
