//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coupon-market/internal/domain/coupon"
	"coupon-market/internal/usecase/queries"
)

type CouponBuilder struct {
	ID          uuid.UUID
	Code        string
	OfferID     uuid.UUID
	UserID      uuid.UUID
	State       string
	UnitCost    decimal.Decimal
	AssignedAt  time.Time
	RedeemedAt  *time.Time
	OfferTitle  string
	CompanyName string
	OfferEndsAt time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now()
	return &CouponBuilder{
		ID:          uuid.New(),
		Code:        "CPN-A1B2C3D4-TESTCODE-00000000",
		OfferID:     uuid.New(),
		UserID:      uuid.New(),
		State:       "assigned",
		UnitCost:    decimal.NewFromInt(500),
		AssignedAt:  now.Add(-time.Hour),
		OfferTitle:  "Two-for-one lunch menu",
		CompanyName: "Cafe Aurora",
		OfferEndsAt: now.Add(72 * time.Hour),
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	state, err := coupon.NewState(b.State)
	if err != nil {
		return nil, err
	}
	return coupon.Reconstruct(
		b.ID, coupon.Code(b.Code), b.OfferID, b.UserID, state,
		b.UnitCost, b.AssignedAt, b.RedeemedAt, b.AssignedAt,
	), nil
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	return &queries.CouponView{
		ID:          b.ID,
		Code:        b.Code,
		OfferID:     b.OfferID,
		UserID:      b.UserID,
		State:       b.State,
		UnitCost:    b.UnitCost,
		AssignedAt:  b.AssignedAt,
		RedeemedAt:  b.RedeemedAt,
		OfferTitle:  b.OfferTitle,
		CompanyName: b.CompanyName,
		OfferEndsAt: b.OfferEndsAt,
	}
}
