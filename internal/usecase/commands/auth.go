package commands

import (
	"context"

	"coupon-market/internal/domain/user"
	"coupon-market/internal/infra"
	"coupon-market/internal/pkg/errs"
	"coupon-market/internal/pkg/jwt"
	"coupon-market/internal/pkg/password"
	"coupon-market/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errs.New("invalid email or password")

type LoginResult struct {
	UserID uuid.UUID
	Role   user.Role
	Token  string
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	reads      shared.CommandReads
	jwtService *jwt.Service
}

func NewAuthUseCase(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{
		reads:      uow.CommandReads(),
		jwtService: jwtService,
	}
}

func (u *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	normalized, err := user.NewEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	creds, err := u.reads.UserByEmail(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if !creds.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := password.Compare(creds.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(creds.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	token, err := u.jwtService.GenerateToken(creds.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{
		UserID: creds.ID,
		Role:   role,
		Token:  token,
	}, nil
}
