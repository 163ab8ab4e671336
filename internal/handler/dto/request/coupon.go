package request

import (
	"strings"

	"github.com/google/uuid"
)

type ClaimCouponsRequest struct {
	OfferID  uuid.UUID `json:"offer_id" binding:"required"`
	Quantity *int32    `json:"quantity,omitempty"`
}

// GetQuantity defaults an omitted quantity to a single coupon.
func (r ClaimCouponsRequest) GetQuantity() int32 {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type ValidateCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

func (r ValidateCodeRequest) GetCode() string {
	return strings.ToUpper(strings.TrimSpace(r.Code))
}
