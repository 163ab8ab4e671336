//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"coupon-market/internal/domain/user"
	"coupon-market/internal/pkg/jwt"
	"coupon-market/internal/pkg/password"
	"coupon-market/internal/usecase/commands"
	"coupon-market/tests/common/builder"
	"coupon-market/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	jwtService := jwt.NewService("test-secret-key", time.Hour)

	seed := func(t *testing.T, mutate func(*builder.UserBuilder)) (*fake.Store, *builder.UserBuilder) {
		t.Helper()
		hash, err := password.Hash("correct horse battery")
		require.NoError(t, err)

		ub := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.PasswordHash = hash
			if mutate != nil {
				mutate(b)
			}
		})
		store := fake.NewStore()
		store.AddCredentials(ub.BuildCredentials())
		return store, ub
	}

	t.Run("valid credentials return a working token", func(t *testing.T) {
		store, ub := seed(t, nil)
		uc := commands.NewAuthUseCase(store, jwtService)

		result, err := uc.Login(ctx, ub.Email, "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, ub.ID, result.UserID)
		assert.Equal(t, user.RoleMember, result.Role)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, ub.ID, claims.UserID)
		assert.Equal(t, "member", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		store, ub := seed(t, nil)
		uc := commands.NewAuthUseCase(store, jwtService)

		_, err := uc.Login(ctx, ub.Email, "wrong password")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("email matching ignores case and surrounding whitespace", func(t *testing.T) {
		store, ub := seed(t, nil)
		uc := commands.NewAuthUseCase(store, jwtService)

		result, err := uc.Login(ctx, "  MEMBER@Example.COM ", "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, ub.ID, result.UserID)
	})

	t.Run("malformed email reads as bad credentials", func(t *testing.T) {
		store, _ := seed(t, nil)
		uc := commands.NewAuthUseCase(store, jwtService)

		_, err := uc.Login(ctx, "not-an-email", "correct horse battery")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		store, _ := seed(t, nil)
		uc := commands.NewAuthUseCase(store, jwtService)

		_, err := uc.Login(ctx, "nobody@example.com", "correct horse battery")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("inactive account is indistinguishable from bad credentials", func(t *testing.T) {
		store, ub := seed(t, func(b *builder.UserBuilder) { b.IsActive = false })
		uc := commands.NewAuthUseCase(store, jwtService)

		_, err := uc.Login(ctx, ub.Email, "correct horse battery")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
