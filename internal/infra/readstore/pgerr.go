package readstore

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"coupon-market/internal/infra"
)

func classify(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
