package uow

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"coupon-market/internal/infra"
	"coupon-market/internal/infra/db"
	"coupon-market/internal/usecase/shared"
)

type commandReads struct {
	db db.DBTX
}

func newCommandReads(dbtx db.DBTX) *commandReads {
	return &commandReads{db: dbtx}
}

func (r *commandReads) OfferHeader(ctx context.Context, id uuid.UUID) (*shared.OfferHeader, error) {
	var h shared.OfferHeader
	err := r.db.QueryRow(ctx,
		`SELECT o.id, o.title, c.name
		 FROM offers o
		 JOIN companies c ON c.id = o.company_id
		 WHERE o.id = $1`, id).
		Scan(&h.ID, &h.Title, &h.CompanyName)
	if err != nil {
		return nil, wrapRead("failed to load offer header", err)
	}
	return &h, nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	var u shared.UserSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, email, name, role, is_active FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.IsActive)
	if err != nil {
		return nil, wrapRead("failed to load user", err)
	}
	return &u, nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserCredentials, error) {
	var u shared.UserCredentials
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, is_active FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive)
	if err != nil {
		return nil, wrapRead("failed to load user credentials", err)
	}
	return &u, nil
}

func wrapRead(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
