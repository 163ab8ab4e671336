//go:build unit

package offer_test

import (
	"testing"
	"time"

	"coupon-market/internal/domain/offer"
	"coupon-market/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffer(t *testing.T) {
	t.Run("valid offer", func(t *testing.T) {
		b := builder.NewOfferBuilder()
		discount, err := offer.NewPercentageDiscount(20)
		require.NoError(t, err)
		window, err := offer.NewWindow(b.StartsAt, b.EndsAt)
		require.NoError(t, err)

		o, err := offer.NewOffer(b.ID, b.CompanyID, b.Title, discount, b.UnitCost, window, 10, offer.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, int32(0), o.Issued())
		assert.Equal(t, int32(10), o.Remaining())
	})

	t.Run("capacity below one is rejected", func(t *testing.T) {
		b := builder.NewOfferBuilder()
		discount, _ := offer.NewPercentageDiscount(20)
		window, _ := offer.NewWindow(b.StartsAt, b.EndsAt)

		_, err := offer.NewOffer(b.ID, b.CompanyID, b.Title, discount, b.UnitCost, window, 0, offer.StatusApproved)
		assert.ErrorIs(t, err, offer.ErrInvalidCapacity)
	})
}

func TestOfferClaimableAt(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name   string
		mutate func(*builder.OfferBuilder)
		errIs  error
	}{
		{
			name:   "approved offer inside window with supply",
			mutate: func(b *builder.OfferBuilder) {},
		},
		{
			name:   "draft offer",
			mutate: func(b *builder.OfferBuilder) { b.Status = "draft" },
			errIs:  offer.ErrNotApproved,
		},
		{
			name:   "rejected offer",
			mutate: func(b *builder.OfferBuilder) { b.Status = "rejected" },
			errIs:  offer.ErrNotApproved,
		},
		{
			name: "window not started",
			mutate: func(b *builder.OfferBuilder) {
				b.StartsAt = now.Add(time.Hour)
				b.EndsAt = now.Add(2 * time.Hour)
			},
			errIs: offer.ErrWindowNotStarted,
		},
		{
			name: "window elapsed",
			mutate: func(b *builder.OfferBuilder) {
				b.StartsAt = now.Add(-2 * time.Hour)
				b.EndsAt = now.Add(-time.Hour)
			},
			errIs: offer.ErrWindowElapsed,
		},
		{
			name:   "supply exhausted",
			mutate: func(b *builder.OfferBuilder) { b.Issued = b.Capacity },
			errIs:  offer.ErrInsufficientSupply,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewOfferBuilder()
			tc.mutate(b)

			o, err := b.BuildDomain()
			require.NoError(t, err)

			got := o.ClaimableAt(now)
			if tc.errIs == nil {
				assert.NoError(t, got)
				assert.True(t, o.IsClaimableAt(now))
			} else {
				assert.ErrorIs(t, got, tc.errIs)
				assert.False(t, o.IsClaimableAt(now))
			}
		})
	}

	t.Run("window end is inclusive", func(t *testing.T) {
		b := builder.NewOfferBuilder()
		o, err := b.BuildDomain()
		require.NoError(t, err)

		assert.True(t, o.IsClaimableAt(b.EndsAt))
		assert.False(t, o.IsClaimableAt(b.EndsAt.Add(time.Nanosecond)))
	})
}

func TestOfferAllocate(t *testing.T) {
	newOffer := func(capacity, issued int32) *offer.Offer {
		o, err := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
			b.Capacity = capacity
			b.Issued = issued
		}).BuildDomain()
		require.NoError(t, err)
		return o
	}

	t.Run("consumes supply", func(t *testing.T) {
		o := newOffer(5, 2)
		require.NoError(t, o.Allocate(2))
		assert.Equal(t, int32(4), o.Issued())
		assert.Equal(t, int32(1), o.Remaining())
	})

	t.Run("allocating the last unit succeeds", func(t *testing.T) {
		o := newOffer(5, 4)
		require.NoError(t, o.Allocate(1))
		assert.Equal(t, int32(0), o.Remaining())
	})

	t.Run("never exceeds capacity", func(t *testing.T) {
		o := newOffer(5, 4)
		err := o.Allocate(2)
		assert.ErrorIs(t, err, offer.ErrInsufficientSupply)
		// failed allocation leaves the counter untouched
		assert.Equal(t, int32(4), o.Issued())
	})

	t.Run("rejects zero and negative quantity", func(t *testing.T) {
		o := newOffer(5, 0)
		assert.ErrorIs(t, o.Allocate(0), offer.ErrInvalidQuantity)
		assert.ErrorIs(t, o.Allocate(-1), offer.ErrInvalidQuantity)
	})
}

func TestOfferRemaining(t *testing.T) {
	t.Run("floors at zero on counter drift", func(t *testing.T) {
		o, err := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
			b.Capacity = 3
			b.Issued = 5
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int32(0), o.Remaining())
	})
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{"ends in exactly three days", now.Add(72 * time.Hour), 3},
		{"partial day rounds up", now.Add(49 * time.Hour), 3},
		{"less than a day counts as one", now.Add(time.Minute), 1},
		{"ends now", now, 0},
		{"already ended", now.Add(-time.Hour), 0},
		{"ended days ago", now.Add(-73 * time.Hour), -3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, offer.DaysRemaining(tc.end, now))
		})
	}
}

func TestDiscount(t *testing.T) {
	t.Run("fixed amount", func(t *testing.T) {
		d, err := offer.NewFixedDiscount(decimal.NewFromInt(300))
		require.NoError(t, err)
		assert.False(t, d.IsPercentage())
		assert.True(t, d.AmountOff().Equal(decimal.NewFromInt(300)))
	})

	t.Run("percentage", func(t *testing.T) {
		d, err := offer.NewPercentageDiscount(15)
		require.NoError(t, err)
		assert.True(t, d.IsPercentage())
		assert.Equal(t, 15.0, d.PercentOff())
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := offer.NewFixedDiscount(decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, offer.ErrInvalidDiscountAmount)
	})

	t.Run("percentage outside 0..100 is rejected", func(t *testing.T) {
		_, err := offer.NewPercentageDiscount(101)
		assert.ErrorIs(t, err, offer.ErrInvalidDiscountPercent)
		_, err = offer.NewPercentageDiscount(-0.5)
		assert.ErrorIs(t, err, offer.ErrInvalidDiscountPercent)
	})

	t.Run("both or neither is ambiguous", func(t *testing.T) {
		amount := decimal.NewFromInt(100)
		percent := 10.0
		_, err := offer.NewDiscount(&amount, &percent)
		assert.ErrorIs(t, err, offer.ErrAmbiguousDiscount)
		_, err = offer.NewDiscount(nil, nil)
		assert.ErrorIs(t, err, offer.ErrAmbiguousDiscount)
	})
}

func TestWindow(t *testing.T) {
	start := time.Now()

	t.Run("end must be after start", func(t *testing.T) {
		_, err := offer.NewWindow(start, start)
		assert.ErrorIs(t, err, offer.ErrInvalidWindow)
		_, err = offer.NewWindow(start, start.Add(-time.Hour))
		assert.ErrorIs(t, err, offer.ErrInvalidWindow)
	})

	t.Run("contains both endpoints", func(t *testing.T) {
		w, err := offer.NewWindow(start, start.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, w.Contains(start))
		assert.True(t, w.Contains(start.Add(time.Hour)))
		assert.False(t, w.Contains(start.Add(-time.Nanosecond)))
		assert.False(t, w.HasElapsed(start.Add(time.Hour)))
		assert.True(t, w.HasElapsed(start.Add(time.Hour+time.Nanosecond)))
	})
}
