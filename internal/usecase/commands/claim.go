package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"coupon-market/internal/domain/coupon"
	"coupon-market/internal/domain/offer"
	"coupon-market/internal/domain/payment"
	"coupon-market/internal/infra"
	"coupon-market/internal/pkg/clock"
	"coupon-market/internal/pkg/config"
	"coupon-market/internal/pkg/errs"
	"coupon-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOfferNotFound      = errs.New("offer not found")
	ErrUnknownUser        = errs.New("unknown user")
	ErrOfferNotClaimable  = errs.New("offer is not claimable")
	ErrInsufficientSupply = errs.New("insufficient coupon supply")
	ErrDuplicateClaim     = errs.New("user already holds the maximum coupons for this offer")
	ErrInvalidQuantity    = errs.New("quantity must be at least 1")
	ErrPaymentDeclined    = errs.New("payment was declined")
	ErrTransientConflict  = errs.New("claim conflicted with concurrent requests, try again")
	ErrStorageFailure     = errs.New("storage operation failed")
)

// InsufficientSupplyError reports how many coupons are actually left so a
// caller can retry with a smaller quantity.
type InsufficientSupplyError struct {
	Remaining int32
}

func (e *InsufficientSupplyError) Error() string {
	return fmt.Sprintf("insufficient coupon supply: %d remaining", e.Remaining)
}

func (e *InsufficientSupplyError) Is(target error) bool {
	return target == ErrInsufficientSupply
}

type ClaimResult struct {
	Coupons   []*coupon.Coupon
	OfferID   uuid.UUID
	Remaining int32
	Total     decimal.Decimal
}

type ClaimCommands interface {
	ClaimCoupons(ctx context.Context, offerID, userID uuid.UUID, quantity int32) (*ClaimResult, error)
}

type claimUseCaseImpl struct {
	uow        shared.UnitOfWork
	authorizer payment.Authorizer
	cfg        config.ClaimConfig
	clock      clock.Clock
}

func NewClaimUseCase(
	uow shared.UnitOfWork,
	authorizer payment.Authorizer,
	cfg config.ClaimConfig,
	clk clock.Clock,
) ClaimCommands {
	return &claimUseCaseImpl{
		uow:        uow,
		authorizer: authorizer,
		cfg:        cfg,
		clock:      clk,
	}
}

// ClaimCoupons converts a claim request into freshly minted coupons.
//
// Every precondition is evaluated inside one transaction that holds the
// offer's row lock, so two claims racing for the last units serialize: one
// sees the supply first, the other sees what it left behind. On any failure
// the transaction rolls back and no counter, coupon or index row survives.
func (u *claimUseCaseImpl) ClaimCoupons(ctx context.Context, offerID, userID uuid.UUID, quantity int32) (*ClaimResult, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	ctx, cancel := context.WithTimeout(ctx, u.cfg.TxTimeout)
	defer cancel()

	var result *ClaimResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := u.claimInTx(ctx, tx, offerID, userID, quantity)
		if err != nil {
			return err
		}
		result = claimed
		return nil
	})
	if err != nil {
		return nil, u.mapClaimError(err)
	}

	return result, nil
}

func (u *claimUseCaseImpl) claimInTx(ctx context.Context, tx shared.Tx, offerID, userID uuid.UUID, quantity int32) (*ClaimResult, error) {
	off, err := tx.Offers().FindByIDForUpdate(ctx, offerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	usr, err := tx.Reads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if !usr.IsActive {
		return nil, ErrUnknownUser
	}

	now := u.clock.Now()
	if claimErr := off.ClaimableAt(now); claimErr != nil {
		if errors.Is(claimErr, offer.ErrInsufficientSupply) {
			return nil, &InsufficientSupplyError{Remaining: 0}
		}
		return nil, errs.Mark(claimErr, ErrOfferNotClaimable)
	}

	if limit := int32(u.cfg.MaxCouponsPerUser); limit > 0 {
		held, countErr := tx.Coupons().CountByOfferAndUser(ctx, offerID, userID)
		if countErr != nil {
			return nil, errs.Mark(countErr, ErrStorageFailure)
		}
		if held+quantity > limit {
			return nil, ErrDuplicateClaim
		}
	}

	total := off.UnitCost().Mul(decimal.NewFromInt(int64(quantity)))
	if payErr := u.authorizer.Authorize(ctx, total); payErr != nil {
		return nil, errs.Mark(payErr, ErrPaymentDeclined)
	}

	if allocErr := off.Allocate(quantity); allocErr != nil {
		if errors.Is(allocErr, offer.ErrInsufficientSupply) {
			return nil, &InsufficientSupplyError{Remaining: off.Remaining()}
		}
		return nil, errs.Mark(allocErr, ErrOfferNotClaimable)
	}
	if saveErr := tx.Offers().SaveIssued(ctx, off); saveErr != nil {
		return nil, errs.Mark(saveErr, ErrStorageFailure)
	}

	coupons := make([]*coupon.Coupon, 0, quantity)
	for i := int32(0); i < quantity; i++ {
		code, codeErr := coupon.GenerateCode(offerID, now)
		if codeErr != nil {
			return nil, errs.Mark(codeErr, ErrStorageFailure)
		}

		cpn := coupon.Mint(code, offerID, userID, off.UnitCost(), now)
		if insertErr := tx.Coupons().Insert(ctx, cpn); insertErr != nil {
			return nil, errs.Mark(insertErr, ErrStorageFailure)
		}
		if indexErr := tx.Coupons().AppendToUserIndex(ctx, userID, cpn.ID()); indexErr != nil {
			return nil, errs.Mark(indexErr, ErrStorageFailure)
		}
		coupons = append(coupons, cpn)
	}

	if notifyErr := u.enqueueClaimNotification(ctx, tx, usr, offerID, coupons); notifyErr != nil {
		return nil, errs.Mark(notifyErr, ErrStorageFailure)
	}

	return &ClaimResult{
		Coupons:   coupons,
		OfferID:   offerID,
		Remaining: off.Remaining(),
		Total:     total,
	}, nil
}

// enqueueClaimNotification records an outbox job carrying everything the
// external mail dispatcher needs; the dispatch itself happens elsewhere.
func (u *claimUseCaseImpl) enqueueClaimNotification(ctx context.Context, tx shared.Tx, usr *shared.UserSnapshot, offerID uuid.UUID, coupons []*coupon.Coupon) error {
	header, err := tx.Reads().OfferHeader(ctx, offerID)
	if err != nil {
		return err
	}

	codes := make([]string, len(coupons))
	for i, c := range coupons {
		codes[i] = c.Code().String()
	}

	payload, err := json.Marshal(map[string]any{
		"user_id":      usr.ID,
		"user_email":   usr.Email,
		"offer_id":     offerID,
		"offer_title":  header.Title,
		"company_name": header.CompanyName,
		"coupon_codes": codes,
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, "email", "coupon_claimed", payload, u.clock.Now())
}

func (u *claimUseCaseImpl) mapClaimError(err error) error {
	switch {
	case errors.Is(err, shared.ErrMaxRetriesExceeded),
		errors.Is(err, context.DeadlineExceeded):
		return errs.Mark(err, ErrTransientConflict)
	default:
		return err
	}
}
