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

type stubOfferStore struct {
	byID      map[uuid.UUID]*queries.OfferView
	claimable []*queries.OfferView
}

func newStubOfferStore() *stubOfferStore {
	return &stubOfferStore{byID: make(map[uuid.UUID]*queries.OfferView)}
}

func (s *stubOfferStore) add(v *queries.OfferView) {
	s.byID[v.ID] = v
	s.claimable = append(s.claimable, v)
}

func (s *stubOfferStore) ListClaimable(_ context.Context, _ time.Time) ([]*queries.OfferView, error) {
	return s.claimable, nil
}

func (s *stubOfferStore) FindByID(_ context.Context, id uuid.UUID) (*queries.OfferView, error) {
	if v, ok := s.byID[id]; ok {
		copied := *v
		return &copied, nil
	}
	return nil, infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound)
}

func TestGetOffer(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	clk := clock.NewMockClock(now)

	t.Run("derives remaining, days remaining and claimable", func(t *testing.T) {
		store := newStubOfferStore()
		view := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
			b.Capacity = 10
			b.Issued = 4
			b.StartsAt = now.Add(-time.Hour)
			b.EndsAt = now.Add(72 * time.Hour)
		}).BuildView()
		store.add(view)

		q := queries.NewOfferQueries(store, clk)
		got, err := q.GetOffer(ctx, view.ID)
		require.NoError(t, err)

		want := *view
		want.Remaining = 6
		want.DaysRemaining = 3
		want.Claimable = true
		if diff := cmp.Diff(&want, got); diff != "" {
			t.Errorf("OfferView mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown offer", func(t *testing.T) {
		q := queries.NewOfferQueries(newStubOfferStore(), clk)
		_, err := q.GetOffer(ctx, uuid.New())
		assert.ErrorIs(t, err, queries.ErrOfferNotFound)
	})

	cases := []struct {
		name          string
		mutate        func(*builder.OfferBuilder)
		wantRemaining int32
		wantClaimable bool
	}{
		{
			name:          "exhausted supply is not claimable",
			mutate:        func(b *builder.OfferBuilder) { b.Issued = b.Capacity },
			wantRemaining: 0,
			wantClaimable: false,
		},
		{
			name: "remaining floors at zero on counter drift",
			mutate: func(b *builder.OfferBuilder) {
				b.Capacity = 5
				b.Issued = 7
			},
			wantRemaining: 0,
			wantClaimable: false,
		},
		{
			name: "window not started yet",
			mutate: func(b *builder.OfferBuilder) {
				b.StartsAt = now.Add(time.Hour)
				b.EndsAt = now.Add(72 * time.Hour)
			},
			wantRemaining: 10,
			wantClaimable: false,
		},
		{
			name: "window elapsed",
			mutate: func(b *builder.OfferBuilder) {
				b.StartsAt = now.Add(-72 * time.Hour)
				b.EndsAt = now.Add(-time.Hour)
			},
			wantRemaining: 10,
			wantClaimable: false,
		},
		{
			name:          "unapproved offer",
			mutate:        func(b *builder.OfferBuilder) { b.Status = "draft" },
			wantRemaining: 10,
			wantClaimable: false,
		},
		{
			name:          "last unit still claimable",
			mutate:        func(b *builder.OfferBuilder) { b.Issued = 9 },
			wantRemaining: 1,
			wantClaimable: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newStubOfferStore()
			view := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
				b.StartsAt = now.Add(-time.Hour)
				b.EndsAt = now.Add(72 * time.Hour)
			}).With(tc.mutate).BuildView()
			store.add(view)

			q := queries.NewOfferQueries(store, clk)
			got, err := q.GetOffer(ctx, view.ID)
			require.NoError(t, err)

			assert.Equal(t, tc.wantRemaining, got.Remaining)
			assert.Equal(t, tc.wantClaimable, got.Claimable)
		})
	}
}

func TestListClaimableOffers(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	clk := clock.NewMockClock(now)

	store := newStubOfferStore()
	first := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
		b.Issued = 3
		b.EndsAt = now.Add(72 * time.Hour)
	}).BuildView()
	second := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
		b.Title = "Free dessert with dinner"
		b.Issued = 0
		b.EndsAt = now.Add(24 * time.Hour)
	}).BuildView()
	store.add(first)
	store.add(second)

	q := queries.NewOfferQueries(store, clk)
	got, err := q.ListClaimableOffers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int32(7), got[0].Remaining)
	assert.True(t, got[0].Claimable)
	assert.Equal(t, int32(10), got[1].Remaining)
	assert.Equal(t, 1, got[1].DaysRemaining)
}
