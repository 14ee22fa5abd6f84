package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store/drivers/sqlite/gen"
)

type signingKeysRepo struct {
	q *gen.Queries
}

func (r *signingKeysRepo) CreateSigningKey(ctx context.Context, k domain.SigningKey) error {
	var retired time.Time
	if k.RetiredAt != nil {
		retired = *k.RetiredAt
	}
	err := r.q.CreateSigningKey(ctx, gen.CreateSigningKeyParams{
		ID:                  k.ID,
		Kid:                 k.Kid,
		Algorithm:           k.Algorithm,
		PrivateKeyEncrypted: k.PrivateKeyEncrypted,
		CreatedAt:           k.CreatedAt.UTC(),
		RetiredAt:           mapTimeNull(retired),
		ExpiresAt:           k.ExpiresAt.UTC(),
	})
	return mapWriteErr(err)
}

func (r *signingKeysRepo) ListSigningKeys(ctx context.Context) ([]domain.SigningKey, error) {
	rows, err := r.q.ListSigningKeys(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SigningKey, 0, len(rows))
	for _, row := range rows {
		k := domain.SigningKey{
			ID:                  row.ID,
			Kid:                 row.Kid,
			Algorithm:           row.Algorithm,
			PrivateKeyEncrypted: row.PrivateKeyEncrypted,
			CreatedAt:           row.CreatedAt.UTC(),
			ExpiresAt:           row.ExpiresAt.UTC(),
		}
		if row.RetiredAt.Valid {
			t := row.RetiredAt.Time.UTC()
			k.RetiredAt = &t
		}
		out = append(out, k)
	}
	return out, nil
}

func (r *signingKeysRepo) DeleteSigningKeysExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.q.DeleteSigningKeysExpiredBefore(ctx, cutoff.UTC())
}
