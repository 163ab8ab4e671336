package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"coupon-market/internal/infra"
	"coupon-market/internal/usecase/queries"
)

const couponViewColumns = `cp.id, cp.code, cp.offer_id, cp.user_id, cp.state,
	cp.unit_cost, cp.assigned_at, cp.redeemed_at, o.title, c.name, o.ends_at`

const couponViewFrom = ` FROM coupons cp
	 JOIN offers o ON o.id = cp.offer_id
	 JOIN companies c ON c.id = o.company_id`

type CouponReadStore struct {
	pool *pgxpool.Pool
}

func NewCouponReadStore(pool *pgxpool.Pool) *CouponReadStore {
	return &CouponReadStore{pool: pool}
}

func (s *CouponReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.CouponView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+couponViewColumns+couponViewFrom+`
		 WHERE cp.user_id = $1
		 ORDER BY cp.assigned_at DESC, cp.id`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user coupons", err)
	}
	defer rows.Close()

	views := make([]*queries.CouponView, 0)
	for rows.Next() {
		v, err := scanCouponView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user coupons", err)
	}
	return views, nil
}

func (s *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+couponViewColumns+couponViewFrom+` WHERE cp.id = $1`, id)
	return scanCouponView(row)
}

func (s *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+couponViewColumns+couponViewFrom+` WHERE cp.code = $1`, code)
	return scanCouponView(row)
}

func (s *CouponReadStore) FindProof(ctx context.Context, id uuid.UUID) (*queries.RedemptionProof, error) {
	var p queries.RedemptionProof
	err := s.pool.QueryRow(ctx,
		`SELECT cp.id, cp.code, u.name, u.email, o.title, c.name, o.ends_at, cp.redeemed_at`+
			couponViewFrom+`
		 JOIN users u ON u.id = cp.user_id
		 WHERE cp.id = $1`, id).
		Scan(&p.CouponID, &p.Code, &p.HolderName, &p.HolderEmail,
			&p.OfferTitle, &p.CompanyName, &p.ExpiresAt, &p.RedeemedAt)
	if err != nil {
		return nil, classify("failed to load redemption proof", err)
	}
	return &p, nil
}

func scanCouponView(row rowScanner) (*queries.CouponView, error) {
	var v queries.CouponView
	if err := row.Scan(
		&v.ID, &v.Code, &v.OfferID, &v.UserID, &v.State,
		&v.UnitCost, &v.AssignedAt, &v.RedeemedAt,
		&v.OfferTitle, &v.CompanyName, &v.OfferEndsAt,
	); err != nil {
		return nil, classify("failed to load coupon view", err)
	}
	return &v, nil
}
