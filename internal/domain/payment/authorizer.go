package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Authorizer is the external payment collaborator consulted before coupons
// are minted. No real gateway exists yet; the service ships with the
// always-approving implementation below.
type Authorizer interface {
	Authorize(ctx context.Context, amount decimal.Decimal) error
}

type AlwaysApprove struct{}

func NewAlwaysApprove() Authorizer {
	return &AlwaysApprove{}
}

func (AlwaysApprove) Authorize(_ context.Context, _ decimal.Decimal) error {
	return nil
}
