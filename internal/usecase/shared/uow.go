package shared

import (
	"context"
	"time"

	"coupon-market/internal/domain/coupon"
	"coupon-market/internal/domain/offer"
	"coupon-market/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork is the transactional boundary of the write side. Within runs
// fn atomically with bounded retry on transient conflicts; either every
// mutation fn made is committed or none of them are.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single-query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: validation reads outside a transaction
	CommandReads() CommandReads
}

type Tx interface {
	Offers() OfferRepository
	Coupons() CouponRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the minimal lookups the write side needs; full views
// live on the query side.
type CommandReads interface {
	OfferHeader(ctx context.Context, id uuid.UUID) (*OfferHeader, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserCredentials, error)
}

// OfferHeader carries the display fields the notification outbox needs.
type OfferHeader struct {
	ID          uuid.UUID
	Title       string
	CompanyName string
}

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Role     string
	IsActive bool
}

type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type OfferRepository interface {
	// FindByIDForUpdate loads the offer and locks its row until the
	// surrounding transaction ends, serializing concurrent claims.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
	// SaveIssued persists the allocated counter of a locked offer.
	SaveIssued(ctx context.Context, o *offer.Offer) error
}

type CouponRepository interface {
	Insert(ctx context.Context, c *coupon.Coupon) error
	// FindByIDForUpdate locks the coupon row for a redeem read-modify-write.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	SaveRedeemed(ctx context.Context, c *coupon.Coupon) error
	CountByOfferAndUser(ctx context.Context, offerID, userID uuid.UUID) (int32, error)
	// AppendToUserIndex extends the denormalized user->coupon index; the
	// coupon row itself stays the source of truth for ownership.
	AppendToUserIndex(ctx context.Context, userID, couponID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
