package queries

import (
	"context"

	"coupon-market/internal/domain/offer"
	"coupon-market/internal/infra"
	"coupon-market/internal/pkg/clock"
	"coupon-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOfferNotFound = errs.New("offer not found")

type OfferQueries interface {
	ListClaimableOffers(ctx context.Context) ([]*OfferView, error)
	GetOffer(ctx context.Context, id uuid.UUID) (*OfferView, error)
}

type offerQueriesImpl struct {
	store OfferReadStore
	clock clock.Clock
}

func NewOfferQueries(store OfferReadStore, clk clock.Clock) OfferQueries {
	return &offerQueriesImpl{
		store: store,
		clock: clk,
	}
}

func (q *offerQueriesImpl) ListClaimableOffers(ctx context.Context) ([]*OfferView, error) {
	now := q.clock.Now()
	views, err := q.store.ListClaimable(ctx, now)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list claimable offers")
	}

	for _, v := range views {
		decorateOfferView(v, q.clock)
	}
	return views, nil
}

func (q *offerQueriesImpl) GetOffer(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, errs.Wrap(err, "failed to find offer")
	}

	decorateOfferView(view, q.clock)
	return view, nil
}

// decorateOfferView fills the derived fields from the persisted counters
// and the wall clock; storage never holds them.
func decorateOfferView(v *OfferView, clk clock.Clock) {
	now := clk.Now()

	remaining := v.Capacity - v.Issued
	if remaining < 0 {
		remaining = 0
	}
	v.Remaining = remaining
	v.DaysRemaining = offer.DaysRemaining(v.EndsAt, now)
	v.Claimable = v.Status == offer.StatusApproved.String() &&
		!now.Before(v.StartsAt) && !now.After(v.EndsAt) &&
		remaining > 0
}
