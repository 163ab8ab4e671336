//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"coupon-market/internal/infra"
	"coupon-market/internal/pkg/clock"
	"coupon-market/internal/pkg/errs"
	"coupon-market/internal/usecase/queries"
	"coupon-market/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCouponStore struct {
	byID   map[uuid.UUID]*queries.CouponView
	byCode map[string]*queries.CouponView
	proofs map[uuid.UUID]*queries.RedemptionProof
	byUser map[uuid.UUID][]*queries.CouponView
}

func newStubCouponStore() *stubCouponStore {
	return &stubCouponStore{
		byID:   make(map[uuid.UUID]*queries.CouponView),
		byCode: make(map[string]*queries.CouponView),
		proofs: make(map[uuid.UUID]*queries.RedemptionProof),
		byUser: make(map[uuid.UUID][]*queries.CouponView),
	}
}

func (s *stubCouponStore) add(v *queries.CouponView) {
	s.byID[v.ID] = v
	s.byCode[v.Code] = v
	s.byUser[v.UserID] = append(s.byUser[v.UserID], v)
}

func (s *stubCouponStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*queries.CouponView, error) {
	return s.byUser[userID], nil
}

func (s *stubCouponStore) FindByID(_ context.Context, id uuid.UUID) (*queries.CouponView, error) {
	if v, ok := s.byID[id]; ok {
		copied := *v
		return &copied, nil
	}
	return nil, infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound)
}

func (s *stubCouponStore) FindByCode(_ context.Context, code string) (*queries.CouponView, error) {
	if v, ok := s.byCode[code]; ok {
		copied := *v
		return &copied, nil
	}
	return nil, infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound)
}

func (s *stubCouponStore) FindProof(_ context.Context, id uuid.UUID) (*queries.RedemptionProof, error) {
	if p, ok := s.proofs[id]; ok {
		return p, nil
	}
	return nil, infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound)
}

func TestGetCoupon(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	clk := clock.NewMockClock(now)

	t.Run("decorates display state and days remaining", func(t *testing.T) {
		store := newStubCouponStore()
		view := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.OfferEndsAt = now.Add(49 * time.Hour)
		}).BuildView()
		store.add(view)

		q := queries.NewCouponQueries(store, clk)
		got, err := q.GetCoupon(ctx, view.ID, view.UserID)
		require.NoError(t, err)

		assert.Equal(t, "assigned", got.DisplayState)
		assert.Equal(t, 3, got.DaysRemaining)

		want := *view
		want.DisplayState = "assigned"
		want.DaysRemaining = 3
		if diff := cmp.Diff(&want, got); diff != "" {
			t.Errorf("CouponView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("redeemed wins over expiry", func(t *testing.T) {
		store := newStubCouponStore()
		redeemedAt := now.Add(-time.Hour)
		view := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.State = "redeemed"
			b.RedeemedAt = &redeemedAt
			b.OfferEndsAt = now.Add(-24 * time.Hour)
		}).BuildView()
		store.add(view)

		q := queries.NewCouponQueries(store, clk)
		got, err := q.GetCoupon(ctx, view.ID, view.UserID)
		require.NoError(t, err)
		assert.Equal(t, "redeemed", got.DisplayState)
	})

	t.Run("elapsed window reads expired", func(t *testing.T) {
		store := newStubCouponStore()
		view := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.OfferEndsAt = now.Add(-time.Minute)
		}).BuildView()
		store.add(view)

		q := queries.NewCouponQueries(store, clk)
		got, err := q.GetCoupon(ctx, view.ID, view.UserID)
		require.NoError(t, err)
		assert.Equal(t, "expired", got.DisplayState)
		assert.LessOrEqual(t, got.DaysRemaining, 0)
	})

	t.Run("requester must own the coupon", func(t *testing.T) {
		store := newStubCouponStore()
		view := builder.NewCouponBuilder().BuildView()
		store.add(view)

		q := queries.NewCouponQueries(store, clk)
		_, err := q.GetCoupon(ctx, view.ID, uuid.New())
		assert.ErrorIs(t, err, queries.ErrNotOwner)
	})

	t.Run("unknown coupon", func(t *testing.T) {
		q := queries.NewCouponQueries(newStubCouponStore(), clk)
		_, err := q.GetCoupon(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, queries.ErrCouponNotFound)
	})
}

func TestValidateCouponCode(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	clk := clock.NewMockClock(now)

	cases := []struct {
		name      string
		mutate    func(*builder.CouponBuilder)
		wantValid bool
		wantState string
	}{
		{
			name:      "assigned coupon inside window is valid",
			mutate:    func(b *builder.CouponBuilder) {},
			wantValid: true,
			wantState: "assigned",
		},
		{
			name:      "redeemed coupon is not valid",
			mutate:    func(b *builder.CouponBuilder) { b.State = "redeemed" },
			wantValid: false,
			wantState: "redeemed",
		},
		{
			name:      "expired coupon is not valid",
			mutate:    func(b *builder.CouponBuilder) { b.OfferEndsAt = now.Add(-time.Hour) },
			wantValid: false,
			wantState: "expired",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newStubCouponStore()
			view := builder.NewCouponBuilder().With(tc.mutate).BuildView()
			store.add(view)

			q := queries.NewCouponQueries(store, clk)
			got, err := q.ValidateCouponCode(ctx, view.Code)
			require.NoError(t, err)

			assert.Equal(t, tc.wantValid, got.Valid)
			assert.Equal(t, tc.wantState, got.State)
			assert.Equal(t, view.OfferID, got.OfferID)
			assert.Equal(t, view.UserID, got.UserID)
		})
	}

	t.Run("unknown code", func(t *testing.T) {
		q := queries.NewCouponQueries(newStubCouponStore(), clk)
		_, err := q.ValidateCouponCode(ctx, "CPN-DOES-NOT-EXIST")
		assert.ErrorIs(t, err, queries.ErrCouponNotFound)
	})
}

func TestGetRedemptionProof(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Now())

	store := newStubCouponStore()
	view := builder.NewCouponBuilder().BuildView()
	store.add(view)
	store.proofs[view.ID] = &queries.RedemptionProof{
		CouponID:    view.ID,
		Code:        view.Code,
		HolderName:  "Test Member",
		HolderEmail: "member@example.com",
		OfferTitle:  view.OfferTitle,
		CompanyName: view.CompanyName,
		ExpiresAt:   view.OfferEndsAt,
	}

	q := queries.NewCouponQueries(store, clk)

	t.Run("owner gets proof data", func(t *testing.T) {
		proof, err := q.GetRedemptionProof(ctx, view.ID, view.UserID)
		require.NoError(t, err)
		assert.Equal(t, view.Code, proof.Code)
		assert.Equal(t, view.CompanyName, proof.CompanyName)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		_, err := q.GetRedemptionProof(ctx, view.ID, uuid.New())
		assert.ErrorIs(t, err, queries.ErrNotOwner)
	})
}
