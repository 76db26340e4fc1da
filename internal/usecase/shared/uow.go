package shared

import (
	"context"

	"lendit/internal/infra/db"
)

type UnitOfWork interface {
	// Within: full read-write transaction with retry on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Items() ItemRepository
	Users() UserRepository
	Comments() CommentRepository
	Notifications() NotificationRepository
	DB() db.DBTX
}
