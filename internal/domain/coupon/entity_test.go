//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"coupon-market/internal/domain/coupon"
	"coupon-market/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMint(t *testing.T) {
	offerID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	c := coupon.Mint("CPN-TEST", offerID, userID, decimal.NewFromInt(500), now)

	assert.NotEqual(t, uuid.Nil, c.ID())
	assert.Equal(t, coupon.StateAssigned, c.State())
	assert.Equal(t, offerID, c.OfferID())
	assert.Equal(t, userID, c.UserID())
	assert.Equal(t, now, c.AssignedAt())
	assert.Nil(t, c.RedeemedAt())
}

func TestRedeem(t *testing.T) {
	now := time.Now()
	offerEnd := now.Add(24 * time.Hour)

	t.Run("owner redeems an assigned coupon", func(t *testing.T) {
		b := builder.NewCouponBuilder()
		c, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, c.Redeem(b.UserID, offerEnd, now))
		assert.Equal(t, coupon.StateRedeemed, c.State())
		require.NotNil(t, c.RedeemedAt())
		assert.Equal(t, now, *c.RedeemedAt())
	})

	t.Run("second redemption is rejected and keeps the first timestamp", func(t *testing.T) {
		b := builder.NewCouponBuilder()
		c, err := b.BuildDomain()
		require.NoError(t, err)

		require.NoError(t, c.Redeem(b.UserID, offerEnd, now))
		first := *c.RedeemedAt()

		err = c.Redeem(b.UserID, offerEnd, now.Add(time.Minute))
		assert.ErrorIs(t, err, coupon.ErrAlreadyRedeemed)
		assert.Equal(t, coupon.StateRedeemed, c.State())
		assert.Equal(t, first, *c.RedeemedAt())
	})

	t.Run("another user cannot redeem", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)

		err = c.Redeem(uuid.New(), offerEnd, now)
		assert.ErrorIs(t, err, coupon.ErrNotOwner)
		assert.Equal(t, coupon.StateAssigned, c.State())
	})

	t.Run("elapsed offer window blocks redemption", func(t *testing.T) {
		b := builder.NewCouponBuilder()
		c, err := b.BuildDomain()
		require.NoError(t, err)

		err = c.Redeem(b.UserID, now.Add(-time.Hour), now)
		assert.ErrorIs(t, err, coupon.ErrExpired)
		assert.Equal(t, coupon.StateAssigned, c.State())
	})

	t.Run("ownership is checked before redemption state", func(t *testing.T) {
		b := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.State = "redeemed"
		})
		c, err := b.BuildDomain()
		require.NoError(t, err)

		err = c.Redeem(uuid.New(), offerEnd, now)
		assert.ErrorIs(t, err, coupon.ErrNotOwner)
	})
}

func TestDisplayStateAt(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name     string
		state    string
		offerEnd time.Time
		want     coupon.DisplayState
	}{
		{"assigned inside window", "assigned", now.Add(time.Hour), coupon.DisplayAssigned},
		{"assigned past window reads expired", "assigned", now.Add(-time.Hour), coupon.DisplayExpired},
		{"redeemed inside window", "redeemed", now.Add(time.Hour), coupon.DisplayRedeemed},
		{"redemption wins over expiry", "redeemed", now.Add(-time.Hour), coupon.DisplayRedeemed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
				b.State = tc.state
			}).BuildDomain()
			require.NoError(t, err)

			assert.Equal(t, tc.want, c.DisplayStateAt(tc.offerEnd, now))
			assert.Equal(t, tc.want == coupon.DisplayAssigned, c.IsRedeemable(tc.offerEnd, now))
		})
	}
}

func TestNewState(t *testing.T) {
	for _, raw := range []string{"assigned", "redeemed"} {
		st, err := coupon.NewState(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, st.String())
	}

	_, err := coupon.NewState("expired")
	assert.ErrorIs(t, err, coupon.ErrInvalidState)
}
