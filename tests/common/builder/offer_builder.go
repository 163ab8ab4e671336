//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coupon-market/internal/domain/offer"
	"coupon-market/internal/usecase/queries"
)

type OfferBuilder struct {
	ID         uuid.UUID
	CompanyID  uuid.UUID
	Title      string
	PercentOff *float64
	AmountOff  *decimal.Decimal
	UnitCost   decimal.Decimal
	StartsAt   time.Time
	EndsAt     time.Time
	Capacity   int32
	Issued     int32
	Status     string
}

func NewOfferBuilder() *OfferBuilder {
	percentOff := 20.0
	now := time.Now()
	return &OfferBuilder{
		ID:         uuid.New(),
		CompanyID:  uuid.New(),
		Title:      "Two-for-one lunch menu",
		PercentOff: &percentOff,
		UnitCost:   decimal.NewFromInt(500),
		StartsAt:   now.Add(-time.Hour),
		EndsAt:     now.Add(72 * time.Hour),
		Capacity:   10,
		Issued:     0,
		Status:     "approved",
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	discount, err := offer.NewDiscount(b.AmountOff, b.PercentOff)
	if err != nil {
		return nil, err
	}
	window, err := offer.NewWindow(b.StartsAt, b.EndsAt)
	if err != nil {
		return nil, err
	}
	status, err := offer.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return offer.Reconstruct(
		b.ID, b.CompanyID, b.Title, discount, b.UnitCost, window,
		b.Capacity, b.Issued, status, now, now,
	), nil
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	return &queries.OfferView{
		ID:              b.ID,
		CompanyID:       b.CompanyID,
		CompanyName:     "Cafe Aurora",
		CompanyCategory: "restaurants",
		Title:           b.Title,
		DiscountPercent: b.PercentOff,
		DiscountAmount:  b.AmountOff,
		UnitCost:        b.UnitCost,
		StartsAt:        b.StartsAt,
		EndsAt:          b.EndsAt,
		Capacity:        b.Capacity,
		Issued:          b.Issued,
		Status:          b.Status,
		CreatedAt:       b.StartsAt,
	}
}
