package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"coupon-market/internal/infra"
	"coupon-market/internal/usecase/queries"
)

const offerViewColumns = `o.id, o.company_id, c.name, c.category, o.title,
	o.discount_percent, o.discount_amount, o.unit_cost, o.starts_at, o.ends_at,
	o.capacity, o.issued, o.status, o.created_at`

type OfferReadStore struct {
	pool *pgxpool.Pool
}

func NewOfferReadStore(pool *pgxpool.Pool) *OfferReadStore {
	return &OfferReadStore{pool: pool}
}

// ListClaimable returns approved offers whose window contains now and which
// still have supply, oldest first. The listing is advisory; the claim
// transaction re-checks every condition under the row lock.
func (s *OfferReadStore) ListClaimable(ctx context.Context, now time.Time) ([]*queries.OfferView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+offerViewColumns+`
		 FROM offers o
		 JOIN companies c ON c.id = o.company_id
		 WHERE o.status = 'approved'
		   AND o.starts_at <= $1
		   AND o.ends_at >= $1
		   AND o.issued < o.capacity
		 ORDER BY o.created_at, o.id`, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list claimable offers", err)
	}
	defer rows.Close()

	views := make([]*queries.OfferView, 0)
	for rows.Next() {
		v, err := scanOfferView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate claimable offers", err)
	}
	return views, nil
}

func (s *OfferReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+offerViewColumns+`
		 FROM offers o
		 JOIN companies c ON c.id = o.company_id
		 WHERE o.id = $1`, id)
	return scanOfferView(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOfferView(row rowScanner) (*queries.OfferView, error) {
	var v queries.OfferView
	if err := row.Scan(
		&v.ID, &v.CompanyID, &v.CompanyName, &v.CompanyCategory, &v.Title,
		&v.DiscountPercent, &v.DiscountAmount, &v.UnitCost, &v.StartsAt, &v.EndsAt,
		&v.Capacity, &v.Issued, &v.Status, &v.CreatedAt,
	); err != nil {
		return nil, classify("failed to load offer view", err)
	}
	return &v, nil
}
