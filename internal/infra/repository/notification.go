package repository

import (
	"context"
	"time"

	"lendit/internal/infra"
	"lendit/internal/infra/db"

	"github.com/doug-martin/goqu/v9"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// CreateJob enqueues a notification job in the same transaction as the
// state change it describes, so a committed booking always has its job
// and a rolled-back one never does.
func (r *NotificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	sql, args, err := pg.Insert("notification_jobs").
		Rows(goqu.Record{
			"kind":    kind,
			"topic":   topic,
			"payload": payload,
			"status":  "PENDING",
			"run_at":  runAt,
		}).
		Prepared(true).ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build notification job insert", err)
	}

	if _, err := dbtx.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}

	return nil
}
