package commands

import (
	"context"
	"errors"

	"coupon-market/internal/domain/coupon"
	"coupon-market/internal/infra"
	"coupon-market/internal/pkg/clock"
	"coupon-market/internal/pkg/errs"
	"coupon-market/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound  = errs.New("coupon not found")
	ErrNotOwner        = errs.New("coupon belongs to another user")
	ErrAlreadyRedeemed = errs.New("coupon already redeemed")
	ErrCouponExpired   = errs.New("coupon has expired")
)

type RedeemCommands interface {
	RedeemCoupon(ctx context.Context, couponID, requestingUserID uuid.UUID) (*coupon.Coupon, error)
}

type redeemUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRedeemUseCase(uow shared.UnitOfWork, clk clock.Clock) RedeemCommands {
	return &redeemUseCaseImpl{
		uow:   uow,
		clock: clk,
	}
}

// RedeemCoupon moves a coupon to its terminal redeemed state. The coupon
// row is locked for the read-modify-write so a double redeem always sees
// the first redemption and fails with ErrAlreadyRedeemed.
func (u *redeemUseCaseImpl) RedeemCoupon(ctx context.Context, couponID, requestingUserID uuid.UUID) (*coupon.Coupon, error) {
	var redeemed *coupon.Coupon
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cpn, err := tx.Coupons().FindByIDForUpdate(ctx, couponID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCouponNotFound
			}
			return errs.Mark(err, ErrStorageFailure)
		}

		off, err := tx.Offers().FindByID(ctx, cpn.OfferID())
		if err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}

		if redeemErr := cpn.Redeem(requestingUserID, off.Window().End(), u.clock.Now()); redeemErr != nil {
			return mapRedeemError(redeemErr)
		}

		if saveErr := tx.Coupons().SaveRedeemed(ctx, cpn); saveErr != nil {
			return errs.Mark(saveErr, ErrStorageFailure)
		}

		redeemed = cpn
		return nil
	})
	if err != nil {
		return nil, err
	}

	return redeemed, nil
}

func mapRedeemError(err error) error {
	switch {
	case errors.Is(err, coupon.ErrNotOwner):
		return errs.Mark(err, ErrNotOwner)
	case errors.Is(err, coupon.ErrAlreadyRedeemed):
		return errs.Mark(err, ErrAlreadyRedeemed)
	case errors.Is(err, coupon.ErrExpired):
		return errs.Mark(err, ErrCouponExpired)
	default:
		return err
	}
}
