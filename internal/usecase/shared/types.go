package shared

import (
	"context"
	"time"

	"lendit/internal/domain/booking"
	"lendit/internal/domain/comment"
	"lendit/internal/domain/item"
	"lendit/internal/domain/user"
	"lendit/internal/infra/db"
)

// BookingSnapshot is the minimal row shape the approval path locks and
// inspects inside a transaction.
type BookingSnapshot struct {
	ID       int64
	Start    time.Time
	End      time.Time
	ItemID   int64
	BookerID int64
	Status   booking.Status
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (int64, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, bookingID int64, status booking.Status) error
	// FindVisibleByIDForUpdate locks the booking row (FOR UPDATE) while
	// restricting visibility to the booker or the item owner.
	FindVisibleByIDForUpdate(ctx context.Context, dbtx db.DBTX, bookingID, visitorID int64) (*BookingSnapshot, error)
}

type ItemRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, it *item.Item) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, it *item.Item) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, u *user.User) error
	Delete(ctx context.Context, dbtx db.DBTX, userID int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *comment.Comment) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
