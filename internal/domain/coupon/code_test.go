//go:build unit

package coupon_test

import (
	"strings"
	"testing"
	"time"

	"coupon-market/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	offerID := uuid.MustParse("a1b2c3d4-0000-4000-8000-000000000000")
	now := time.Now()

	t.Run("format", func(t *testing.T) {
		code, err := coupon.GenerateCode(offerID, now)
		require.NoError(t, err)

		parts := strings.Split(code.String(), "-")
		require.Len(t, parts, 4)
		assert.Equal(t, "CPN", parts[0])
		assert.Equal(t, "A1B2C3D4", parts[1])
		assert.Len(t, parts[3], 8)
		assert.Equal(t, code.String(), strings.ToUpper(code.String()))
	})

	t.Run("suffix avoids ambiguous characters", func(t *testing.T) {
		code, err := coupon.GenerateCode(offerID, now)
		require.NoError(t, err)

		parts := strings.Split(code.String(), "-")
		assert.NotContains(t, parts[3], "I")
		assert.NotContains(t, parts[3], "L")
		assert.NotContains(t, parts[3], "O")
		assert.NotContains(t, parts[3], "U")
	})

	t.Run("codes minted at the same instant differ", func(t *testing.T) {
		seen := make(map[coupon.Code]struct{})
		for range 100 {
			code, err := coupon.GenerateCode(offerID, now)
			require.NoError(t, err)
			_, dup := seen[code]
			require.False(t, dup, "duplicate code %s", code)
			seen[code] = struct{}{}
		}
	})
}
