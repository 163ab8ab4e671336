//go:build unit

// Package fake provides an in-memory UnitOfWork whose transactions are
// serialized by a mutex and rolled back on error, mirroring the row-lock
// semantics the Postgres implementation gets from SELECT ... FOR UPDATE.
package fake

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"coupon-market/internal/domain/coupon"
	"coupon-market/internal/domain/offer"
	"coupon-market/internal/infra"
	"coupon-market/internal/infra/db"
	"coupon-market/internal/pkg/errs"
	"coupon-market/internal/usecase/shared"
)

var _ shared.UnitOfWork = (*Store)(nil)

type NotificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type Store struct {
	mu           sync.Mutex
	offers       map[uuid.UUID]*offer.Offer
	companyNames map[uuid.UUID]string
	coupons      map[uuid.UUID]*coupon.Coupon
	users        map[uuid.UUID]*shared.UserSnapshot
	usersByEmail map[string]*shared.UserCredentials
	userIndex    map[uuid.UUID][]uuid.UUID
	jobs         []NotificationJob
}

func NewStore() *Store {
	return &Store{
		offers:       make(map[uuid.UUID]*offer.Offer),
		companyNames: make(map[uuid.UUID]string),
		coupons:      make(map[uuid.UUID]*coupon.Coupon),
		users:        make(map[uuid.UUID]*shared.UserSnapshot),
		usersByEmail: make(map[string]*shared.UserCredentials),
		userIndex:    make(map[uuid.UUID][]uuid.UUID),
	}
}

// Seeding

func (s *Store) AddOffer(o *offer.Offer, companyName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[o.ID()] = cloneOffer(o)
	s.companyNames[o.CompanyID()] = companyName
}

func (s *Store) AddUser(u *shared.UserSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *u
	s.users[u.ID] = &copied
}

func (s *Store) AddCredentials(c *shared.UserCredentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *c
	s.usersByEmail[c.Email] = &copied
	s.users[c.ID] = &shared.UserSnapshot{
		ID:       c.ID,
		Email:    c.Email,
		Role:     c.Role,
		IsActive: c.IsActive,
	}
}

func (s *Store) AddCoupon(c *coupon.Coupon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupons[c.ID()] = cloneCoupon(c)
	s.userIndex[c.UserID()] = append(s.userIndex[c.UserID()], c.ID())
}

// Inspection

func (s *Store) Offer(id uuid.UUID) *offer.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.offers[id]; ok {
		return cloneOffer(o)
	}
	return nil
}

func (s *Store) Coupon(id uuid.UUID) *coupon.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.coupons[id]; ok {
		return cloneCoupon(c)
	}
	return nil
}

func (s *Store) CouponsByOffer(offerID uuid.UUID) []*coupon.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*coupon.Coupon
	for _, c := range s.coupons {
		if c.OfferID() == offerID {
			out = append(out, cloneCoupon(c))
		}
	}
	return out
}

func (s *Store) CouponsByUser(userID uuid.UUID) []*coupon.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*coupon.Coupon
	for _, id := range s.userIndex[userID] {
		if c, ok := s.coupons[id]; ok {
			out = append(out, cloneCoupon(c))
		}
	}
	return out
}

func (s *Store) Jobs() []NotificationJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]NotificationJob(nil), s.jobs...)
}

func (s *Store) CouponCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.coupons)
}

// shared.UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshotLocked()
	if err := fn(ctx, &fakeTx{store: s}); err != nil {
		s.restoreLocked(snap)
		return err
	}
	return nil
}

func (s *Store) WithDB(_ context.Context, _ func(ctx context.Context, dbtx db.DBTX) error) error {
	return errs.New("WithDB is not supported by the fake store")
}

func (s *Store) CommandReads() shared.CommandReads {
	return &fakeReads{store: s, locked: false}
}

type storeSnapshot struct {
	offers    map[uuid.UUID]*offer.Offer
	coupons   map[uuid.UUID]*coupon.Coupon
	userIndex map[uuid.UUID][]uuid.UUID
	jobs      []NotificationJob
}

func (s *Store) snapshotLocked() storeSnapshot {
	snap := storeSnapshot{
		offers:    make(map[uuid.UUID]*offer.Offer, len(s.offers)),
		coupons:   make(map[uuid.UUID]*coupon.Coupon, len(s.coupons)),
		userIndex: make(map[uuid.UUID][]uuid.UUID, len(s.userIndex)),
		jobs:      append([]NotificationJob(nil), s.jobs...),
	}
	for id, o := range s.offers {
		snap.offers[id] = cloneOffer(o)
	}
	for id, c := range s.coupons {
		snap.coupons[id] = cloneCoupon(c)
	}
	for id, ids := range s.userIndex {
		snap.userIndex[id] = append([]uuid.UUID(nil), ids...)
	}
	return snap
}

func (s *Store) restoreLocked(snap storeSnapshot) {
	s.offers = snap.offers
	s.coupons = snap.coupons
	s.userIndex = snap.userIndex
	s.jobs = snap.jobs
}

func cloneOffer(o *offer.Offer) *offer.Offer {
	return offer.Reconstruct(
		o.ID(), o.CompanyID(), o.Title(), o.Discount(), o.UnitCost(),
		o.Window(), o.Capacity(), o.Issued(), o.Status(),
		o.CreatedAt(), o.UpdatedAt(),
	)
}

func cloneCoupon(c *coupon.Coupon) *coupon.Coupon {
	var redeemedAt *time.Time
	if t := c.RedeemedAt(); t != nil {
		copied := *t
		redeemedAt = &copied
	}
	return coupon.Reconstruct(
		c.ID(), c.Code(), c.OfferID(), c.UserID(), c.State(),
		c.UnitCost(), c.AssignedAt(), redeemedAt, c.CreatedAt(),
	)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errs.New("no rows"), infra.KindNotFound)
}
