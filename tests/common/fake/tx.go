//go:build unit

package fake

import (
	"context"
	"time"

	"github.com/google/uuid"

	"coupon-market/internal/domain/coupon"
	"coupon-market/internal/domain/offer"
	"coupon-market/internal/infra/db"
	"coupon-market/internal/usecase/shared"
)

// fakeTx operates on the store the surrounding Within call already locked.
type fakeTx struct {
	store *Store
}

func (t *fakeTx) Offers() shared.OfferRepository            { return &fakeOffers{store: t.store} }
func (t *fakeTx) Coupons() shared.CouponRepository          { return &fakeCoupons{store: t.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository {
	return &fakeNotifications{store: t.store}
}
func (t *fakeTx) Reads() shared.CommandReads { return &fakeReads{store: t.store, locked: true} }
func (t *fakeTx) DB() db.DBTX                { return nil }

type fakeOffers struct {
	store *Store
}

func (r *fakeOffers) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*offer.Offer, error) {
	o, ok := r.store.offers[id]
	if !ok {
		return nil, notFound("offer not found")
	}
	return cloneOffer(o), nil
}

func (r *fakeOffers) FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	return r.FindByIDForUpdate(ctx, id)
}

func (r *fakeOffers) SaveIssued(_ context.Context, o *offer.Offer) error {
	if _, ok := r.store.offers[o.ID()]; !ok {
		return notFound("offer not found on save")
	}
	r.store.offers[o.ID()] = cloneOffer(o)
	return nil
}

type fakeCoupons struct {
	store *Store
}

func (r *fakeCoupons) Insert(_ context.Context, c *coupon.Coupon) error {
	r.store.coupons[c.ID()] = cloneCoupon(c)
	return nil
}

func (r *fakeCoupons) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	c, ok := r.store.coupons[id]
	if !ok {
		return nil, notFound("coupon not found")
	}
	return cloneCoupon(c), nil
}

func (r *fakeCoupons) SaveRedeemed(_ context.Context, c *coupon.Coupon) error {
	if _, ok := r.store.coupons[c.ID()]; !ok {
		return notFound("coupon not found on save")
	}
	r.store.coupons[c.ID()] = cloneCoupon(c)
	return nil
}

func (r *fakeCoupons) CountByOfferAndUser(_ context.Context, offerID, userID uuid.UUID) (int32, error) {
	var count int32
	for _, c := range r.store.coupons {
		if c.OfferID() == offerID && c.UserID() == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeCoupons) AppendToUserIndex(_ context.Context, userID, couponID uuid.UUID) error {
	r.store.userIndex[userID] = append(r.store.userIndex[userID], couponID)
	return nil
}

type fakeNotifications struct {
	store *Store
}

func (r *fakeNotifications) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.store.jobs = append(r.store.jobs, NotificationJob{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   runAt,
	})
	return nil
}

// fakeReads serves both transactional reads (store already locked) and
// standalone CommandReads.
type fakeReads struct {
	store  *Store
	locked bool
}

func (r *fakeReads) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *fakeReads) OfferHeader(_ context.Context, id uuid.UUID) (*shared.OfferHeader, error) {
	defer r.lock()()
	o, ok := r.store.offers[id]
	if !ok {
		return nil, notFound("offer not found")
	}
	return &shared.OfferHeader{
		ID:          o.ID(),
		Title:       o.Title(),
		CompanyName: r.store.companyNames[o.CompanyID()],
	}, nil
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	defer r.lock()()
	u, ok := r.store.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	copied := *u
	return &copied, nil
}

func (r *fakeReads) UserByEmail(_ context.Context, email string) (*shared.UserCredentials, error) {
	defer r.lock()()
	u, ok := r.store.usersByEmail[email]
	if !ok {
		return nil, notFound("user not found")
	}
	copied := *u
	return &copied, nil
}
