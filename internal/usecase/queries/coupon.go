package queries

import (
	"context"

	"coupon-market/internal/domain/coupon"
	"coupon-market/internal/domain/offer"
	"coupon-market/internal/infra"
	"coupon-market/internal/pkg/clock"
	"coupon-market/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound = errs.New("coupon not found")
	ErrNotOwner       = errs.New("coupon belongs to another user")
)

type CouponQueries interface {
	ListUserCoupons(ctx context.Context, userID uuid.UUID) ([]*CouponView, error)
	GetCoupon(ctx context.Context, id, requestingUserID uuid.UUID) (*CouponView, error)
	ValidateCouponCode(ctx context.Context, code string) (*CodeValidationView, error)
	GetRedemptionProof(ctx context.Context, id, requestingUserID uuid.UUID) (*RedemptionProof, error)
}

type couponQueriesImpl struct {
	store CouponReadStore
	clock clock.Clock
}

func NewCouponQueries(store CouponReadStore, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{
		store: store,
		clock: clk,
	}
}

func (q *couponQueriesImpl) ListUserCoupons(ctx context.Context, userID uuid.UUID) ([]*CouponView, error) {
	views, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list user coupons")
	}

	for _, v := range views {
		decorateCouponView(v, q.clock)
	}
	return views, nil
}

func (q *couponQueriesImpl) GetCoupon(ctx context.Context, id, requestingUserID uuid.UUID) (*CouponView, error) {
	view, err := q.findCoupon(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != requestingUserID {
		return nil, ErrNotOwner
	}

	decorateCouponView(view, q.clock)
	return view, nil
}

// ValidateCouponCode is the business-side counter check: it reports whether
// the presented code is still usable without exposing the full coupon.
func (q *couponQueriesImpl) ValidateCouponCode(ctx context.Context, code string) (*CodeValidationView, error) {
	view, err := q.store.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Wrap(err, "failed to find coupon by code")
	}

	decorateCouponView(view, q.clock)
	return &CodeValidationView{
		Valid:   view.DisplayState == coupon.DisplayAssigned.String(),
		State:   view.DisplayState,
		OfferID: view.OfferID,
		UserID:  view.UserID,
	}, nil
}

func (q *couponQueriesImpl) GetRedemptionProof(ctx context.Context, id, requestingUserID uuid.UUID) (*RedemptionProof, error) {
	view, err := q.findCoupon(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != requestingUserID {
		return nil, ErrNotOwner
	}

	proof, err := q.store.FindProof(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Wrap(err, "failed to load redemption proof")
	}
	return proof, nil
}

func (q *couponQueriesImpl) findCoupon(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Wrap(err, "failed to find coupon")
	}
	return view, nil
}

func decorateCouponView(v *CouponView, clk clock.Clock) {
	now := clk.Now()

	switch {
	case v.State == coupon.StateRedeemed.String():
		v.DisplayState = coupon.DisplayRedeemed.String()
	case v.OfferEndsAt.Before(now):
		v.DisplayState = coupon.DisplayExpired.String()
	default:
		v.DisplayState = coupon.DisplayAssigned.String()
	}
	v.DaysRemaining = offer.DaysRemaining(v.OfferEndsAt, now)
}
