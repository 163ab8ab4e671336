package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coupon-market/internal/usecase/commands"
)

type ClaimedCoupon struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	State      string    `json:"state"`
	AssignedAt time.Time `json:"assigned_at"`
}

type ClaimResponse struct {
	OfferID   uuid.UUID       `json:"offer_id"`
	Remaining int32           `json:"remaining"`
	TotalCost decimal.Decimal `json:"total_cost"`
	Coupons   []ClaimedCoupon `json:"coupons"`
}

func FromClaimResult(result *commands.ClaimResult) *ClaimResponse {
	coupons := make([]ClaimedCoupon, 0, len(result.Coupons))
	for _, c := range result.Coupons {
		coupons = append(coupons, ClaimedCoupon{
			ID:         c.ID(),
			Code:       string(c.Code()),
			State:      c.State().String(),
			AssignedAt: c.AssignedAt(),
		})
	}
	return &ClaimResponse{
		OfferID:   result.OfferID,
		Remaining: result.Remaining,
		TotalCost: result.Total,
		Coupons:   coupons,
	}
}

type RedeemResponse struct {
	ID         uuid.UUID  `json:"id"`
	Code       string     `json:"code"`
	State      string     `json:"state"`
	RedeemedAt *time.Time `json:"redeemed_at"`
}
