package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coupon-market/internal/domain/coupon"
	"coupon-market/internal/infra"
	"coupon-market/internal/infra/db"
)

const couponColumns = `id, code, offer_id, user_id, state, unit_cost,
	assigned_at, redeemed_at, created_at`

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(dbtx db.DBTX) *CouponRepository {
	return &CouponRepository{db: dbtx}
}

func (r *CouponRepository) Insert(ctx context.Context, c *coupon.Coupon) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO coupons (id, code, offer_id, user_id, state, unit_cost, assigned_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID(), string(c.Code()), c.OfferID(), c.UserID(), c.State().String(),
		c.UnitCost(), c.AssignedAt(), c.CreatedAt())
	if err != nil {
		return classify("failed to insert coupon", err)
	}
	return nil
}

func (r *CouponRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE id = $1 FOR UPDATE`, id)
	return scanCoupon(row)
}

func (r *CouponRepository) SaveRedeemed(ctx context.Context, c *coupon.Coupon) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE coupons SET state = $2, redeemed_at = $3 WHERE id = $1`,
		c.ID(), c.State().String(), c.RedeemedAt())
	if err != nil {
		return classify("failed to save redeemed coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found on save", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) CountByOfferAndUser(ctx context.Context, offerID, userID uuid.UUID) (int32, error) {
	var count int32
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM coupons WHERE offer_id = $1 AND user_id = $2`,
		offerID, userID).Scan(&count)
	if err != nil {
		return 0, classify("failed to count user coupons", err)
	}
	return count, nil
}

func (r *CouponRepository) AppendToUserIndex(ctx context.Context, userID, couponID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_coupons (user_id, coupon_id) VALUES ($1, $2)`,
		userID, couponID)
	if err != nil {
		return classify("failed to append user coupon index", err)
	}
	return nil
}

func scanCoupon(row rowScanner) (*coupon.Coupon, error) {
	var (
		id, offerID, userID uuid.UUID
		code, state         string
		unitCost            decimal.Decimal
		assignedAt          time.Time
		redeemedAt          *time.Time
		createdAt           time.Time
	)
	if err := row.Scan(
		&id, &code, &offerID, &userID, &state, &unitCost,
		&assignedAt, &redeemedAt, &createdAt,
	); err != nil {
		return nil, classify("failed to load coupon", err)
	}

	st, err := coupon.NewState(state)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid state column", err)
	}

	return coupon.Reconstruct(
		id, coupon.Code(code), offerID, userID, st, unitCost,
		assignedAt, redeemedAt, createdAt,
	), nil
}
