package uow

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"coupon-market/internal/infra/db"
	"coupon-market/internal/infra/repository"
	"coupon-market/internal/pkg/config"
	"coupon-market/internal/usecase/shared"
)

// PostgresUoW binds the write-side repositories to one pgx transaction.
type PostgresUoW struct {
	pool       *pgxpool.Pool
	maxRetries int
	reads      *commandReads
}

func NewPostgresUoW(pool *pgxpool.Pool, cfg config.ClaimConfig) *PostgresUoW {
	return &PostgresUoW{
		pool:       pool,
		maxRetries: cfg.MaxRetries,
		reads:      newCommandReads(pool),
	}
}

func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	_, err := shared.RunInTxWithRetry(ctx, u.pool, u.maxRetries, func(dbtx db.DBTX) (struct{}, error) {
		return struct{}{}, fn(ctx, newPgTx(dbtx))
	})
	return err
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return u.reads
}

// pgTx hands out repositories bound to the transaction, built lazily so a
// usecase only pays for the ones it touches.
type pgTx struct {
	dbtx          db.DBTX
	offers        *repository.OfferRepository
	coupons       *repository.CouponRepository
	notifications *repository.NotificationRepository
	reads         *commandReads
}

func newPgTx(dbtx db.DBTX) *pgTx {
	return &pgTx{dbtx: dbtx}
}

func (t *pgTx) Offers() shared.OfferRepository {
	if t.offers == nil {
		t.offers = repository.NewOfferRepository(t.dbtx)
	}
	return t.offers
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.coupons == nil {
		t.coupons = repository.NewCouponRepository(t.dbtx)
	}
	return t.coupons
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notifications == nil {
		t.notifications = repository.NewNotificationRepository(t.dbtx)
	}
	return t.notifications
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = newCommandReads(t.dbtx)
	}
	return t.reads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}
