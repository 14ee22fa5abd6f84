package store

import (
	"context"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/pkg/jwtx"
)

// KeyStoreAdapter exposes SigningKeys as a jwtx.KeyStore.
type KeyStoreAdapter struct {
	Keys SigningKeys
}

var _ jwtx.KeyStore = KeyStoreAdapter{}

func (a KeyStoreAdapter) ListSigningKeys(ctx context.Context) ([]jwtx.SigningKeyRecord, error) {
	keys, err := a.Keys.ListSigningKeys(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]jwtx.SigningKeyRecord, len(keys))
	for i, k := range keys {
		out[i] = jwtx.SigningKeyRecord{
			ID:                  k.ID,
			Kid:                 k.Kid,
			Algorithm:           k.Algorithm,
			PrivateKeyEncrypted: k.PrivateKeyEncrypted,
			CreatedAt:           k.CreatedAt,
			RetiredAt:           k.RetiredAt,
			ExpiresAt:           k.ExpiresAt,
		}
	}
	return out, nil
}

func (a KeyStoreAdapter) CreateSigningKey(ctx context.Context, rec jwtx.SigningKeyRecord) error {
	return a.Keys.CreateSigningKey(ctx, domain.SigningKey{
		ID:                  rec.ID,
		Kid:                 rec.Kid,
		Algorithm:           rec.Algorithm,
		PrivateKeyEncrypted: rec.PrivateKeyEncrypted,
		CreatedAt:           rec.CreatedAt,
		RetiredAt:           rec.RetiredAt,
		ExpiresAt:           rec.ExpiresAt,
	})
}
