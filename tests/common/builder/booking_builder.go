//go:build unit || e2e

package builder

import (
	"time"

	dombooking "lendit/internal/domain/booking"
	reqdto "lendit/internal/handler/dto/request"
	"lendit/internal/usecase/commands"
	"lendit/internal/usecase/queries"
	"lendit/internal/usecase/shared"
)

type BookingBuilder struct {
	ID          int64
	Start       time.Time
	End         time.Time
	Status      dombooking.Status
	BookerID    int64
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	Available   bool
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:          1,
		Start:       now.Add(24 * time.Hour),
		End:         now.Add(48 * time.Hour),
		Status:      dombooking.StatusWaiting,
		BookerID:    2,
		ItemID:      10,
		ItemName:    "Cordless drill",
		ItemOwnerID: 1,
		Available:   true,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain(now time.Time) (*dombooking.Booking, error) {
	period, err := dombooking.NewPeriod(b.Start, b.End, now)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.BuildItemSnapshot(), b.BookerID, period)
}

func (b *BookingBuilder) BuildItemSnapshot() dombooking.ItemSnapshot {
	return dombooking.ItemSnapshot{
		ID:        b.ItemID,
		Name:      b.ItemName,
		OwnerID:   b.ItemOwnerID,
		Available: b.Available,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		Start:       b.Start,
		End:         b.End,
		Status:      b.Status.String(),
		BookerID:    b.BookerID,
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		ItemOwnerID: b.ItemOwnerID,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:       b.ID,
		Start:    b.Start,
		End:      b.End,
		ItemID:   b.ItemID,
		BookerID: b.BookerID,
		Status:   b.Status,
	}
}

func (b *BookingBuilder) BuildItemView() *queries.ItemView {
	return &queries.ItemView{
		ID:          b.ItemID,
		Name:        b.ItemName,
		Description: "A well-kept tool",
		Available:   b.Available,
		OwnerID:     b.ItemOwnerID,
	}
}

func (b *BookingBuilder) BuildBookerView() *queries.UserView {
	return &queries.UserView{
		ID:    b.BookerID,
		Name:  "Borrower",
		Email: "borrower@example.com",
	}
}

func (b *BookingBuilder) BuildOwnerView() *queries.UserView {
	return &queries.UserView{
		ID:    b.ItemOwnerID,
		Name:  "Owner",
		Email: "owner@example.com",
	}
}

func (b *BookingBuilder) BuildCreateParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
	}
}
