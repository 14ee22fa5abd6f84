package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/pkg/cryptox"
	"github.com/aussiebroadwan/democat/pkg/jwtx"
)

// InitKeys builds the KeyManager for the configured storage mode.
//
//   - "persistent" (default): Ed25519 keys are stored in the database,
//     encrypted with the master key in cfg.MasterKeyFile. Tokens survive
//     restarts.
//   - "ephemeral": keys live only in memory and every token issued before a
//     restart stops verifying.
//
// now is the verifier clock; nil means time.Now.
func InitKeys(ctx context.Context, cfg Config, db store.Store, logger *slog.Logger, now func() time.Time) (*jwtx.KeyManager, error) {
	switch cfg.KeyStorageMode {
	case "ephemeral":
		logger.Info("initializing ephemeral key manager", "num_keys", cfg.NumKeys)

		km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
			Issuer:   cfg.Issuer,
			Audience: []string{cfg.Audience},
			NumKeys:  cfg.NumKeys,
			Now:      now,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize ephemeral key manager: %w", err)
		}

		logger.Info("generated ephemeral signing keys", "num_keys", km.NumSigners(), "issuer", cfg.Issuer)
		logger.Warn("all existing tokens are now invalid due to key rotation on startup")
		return km, nil

	case "", "persistent":
		master, err := cryptox.LoadOrCreateMasterKey(cfg.MasterKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load master key: %w", err)
		}
		cipher, err := cryptox.NewKeyCipher(master)
		if err != nil {
			return nil, err
		}

		logger.Info("initializing persistent key manager",
			"num_keys", cfg.NumKeys,
			"lifetime", cfg.KeyLifetime,
			"master_key_file", cfg.MasterKeyFile,
		)

		km, err := jwtx.NewPersistentKeyManager(ctx, jwtx.PersistentKeyManagerOptions{
			Store:    store.KeyStoreAdapter{Keys: db.SigningKeys()},
			Cipher:   cipher,
			Issuer:   cfg.Issuer,
			Audience: []string{cfg.Audience},
			NumKeys:  cfg.NumKeys,
			Lifetime: cfg.KeyLifetime,
			Now:      now,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize persistent key manager: %w", err)
		}

		logger.Info("persistent signing keys loaded",
			"num_keys", km.NumSigners(),
			"verifying_keys", len(km.KeySet.PublicJWKS().Keys),
			"issuer", cfg.Issuer,
		)
		return km, nil
	}
	return nil, fmt.Errorf("unknown CATALOG_KEY_STORAGE %q (want persistent or ephemeral)", cfg.KeyStorageMode)
}
