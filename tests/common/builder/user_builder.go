//go:build unit || e2e

package builder

import (
	"github.com/google/uuid"

	"coupon-market/internal/usecase/queries"
	"coupon-market/internal/usecase/shared"
)

type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "member@example.com",
		Name:         "Test Member",
		PasswordHash: "hashed_password",
		Role:         "member",
		IsActive:     true,
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:       b.ID,
		Email:    b.Email,
		Name:     b.Name,
		Role:     b.Role,
		IsActive: b.IsActive,
	}
}

func (b *UserBuilder) BuildCredentials() *shared.UserCredentials {
	return &shared.UserCredentials{
		ID:           b.ID,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		Role:         b.Role,
		IsActive:     b.IsActive,
	}
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:       b.ID,
		Email:    b.Email,
		Name:     b.Name,
		Role:     b.Role,
		IsActive: b.IsActive,
	}
}
