package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coupon-market/internal/domain/offer"
	"coupon-market/internal/infra"
	"coupon-market/internal/infra/db"
)

const offerColumns = `id, company_id, title, discount_percent, discount_amount,
	unit_cost, starts_at, ends_at, capacity, issued, status, created_at, updated_at`

type OfferRepository struct {
	db db.DBTX
}

func NewOfferRepository(dbtx db.DBTX) *OfferRepository {
	return &OfferRepository{db: dbtx}
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)
	return scanOffer(row)
}

// FindByIDForUpdate locks the offer row for the rest of the transaction so
// concurrent claims against the same offer serialize on it.
func (r *OfferRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+offerColumns+` FROM offers WHERE id = $1 FOR UPDATE`, id)
	return scanOffer(row)
}

func (r *OfferRepository) SaveIssued(ctx context.Context, o *offer.Offer) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE offers SET issued = $2, updated_at = now() WHERE id = $1`,
		o.ID(), o.Issued())
	if err != nil {
		return classify("failed to save offer issued counter", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found on save", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOffer(row rowScanner) (*offer.Offer, error) {
	var (
		id, companyID        uuid.UUID
		title, status        string
		percentOff           *float64
		amountOff            *decimal.Decimal
		unitCost             decimal.Decimal
		startsAt, endsAt     time.Time
		capacity, issued     int32
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(
		&id, &companyID, &title, &percentOff, &amountOff,
		&unitCost, &startsAt, &endsAt, &capacity, &issued, &status,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, classify("failed to load offer", err)
	}

	discount, err := offer.NewDiscount(amountOff, percentOff)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid discount columns", err)
	}
	window, err := offer.NewWindow(startsAt, endsAt)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid window columns", err)
	}
	st, err := offer.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid status column", err)
	}

	return offer.Reconstruct(
		id, companyID, title, discount, unitCost, window,
		capacity, issued, st, createdAt, updatedAt,
	), nil
}
