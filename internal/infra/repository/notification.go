package repository

import (
	"context"
	"time"

	"coupon-market/internal/infra/db"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

// CreateJob appends an outbox row. Writing it in the same transaction as the
// claim keeps notification delivery exactly as reliable as the claim itself.
func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notification_jobs (kind, topic, payload, run_at)
		 VALUES ($1, $2, $3, $4)`,
		kind, topic, payload, runAt)
	if err != nil {
		return classify("failed to create notification job", err)
	}
	return nil
}
