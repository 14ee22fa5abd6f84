package jwtx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/democat/pkg/cryptox"
	"github.com/aussiebroadwan/democat/pkg/idx"
)

// DefaultKeyLifetime is how long a stored key is used for signing.
const DefaultKeyLifetime = 90 * 24 * time.Hour

// SigningKeyRecord is a signing key as stored in the database. It mirrors
// the store's type so jwtx does not import the catalog domain.
type SigningKeyRecord struct {
	ID                  string
	Kid                 string
	Algorithm           string
	PrivateKeyEncrypted []byte
	CreatedAt           time.Time
	RetiredAt           *time.Time
	ExpiresAt           time.Time
}

// Active reports whether the key may still sign at now.
func (r SigningKeyRecord) Active(now time.Time) bool {
	return r.RetiredAt == nil && now.Before(r.ExpiresAt)
}

// KeyStore is the storage a persistent KeyManager needs.
type KeyStore interface {
	// ListSigningKeys returns every stored key, including ones that no
	// longer sign but still verify.
	ListSigningKeys(ctx context.Context) ([]SigningKeyRecord, error)

	CreateSigningKey(ctx context.Context, key SigningKeyRecord) error
}

// KeyEncrypter seals private key PEMs at rest.
type KeyEncrypter interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(sealed []byte) ([]byte, error)
}

type PersistentKeyManagerOptions struct {
	Store  KeyStore
	Cipher KeyEncrypter

	Issuer   string
	Audience []string

	// NumKeys is the target number of active keys. Defaults to 3, capped
	// at 10.
	NumKeys int

	// Lifetime is how long a newly generated key signs. Defaults to
	// DefaultKeyLifetime.
	Lifetime time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// NewPersistentKeyManager loads the stored keys, generating and storing new
// ones until NumKeys are active. Every stored key verifies; only active keys
// sign. Tokens therefore survive restarts.
func NewPersistentKeyManager(ctx context.Context, opts PersistentKeyManagerOptions) (*KeyManager, error) {
	if opts.Store == nil || opts.Cipher == nil {
		return nil, errors.New("jwtx: store and cipher are required")
	}
	if opts.Issuer == "" {
		return nil, errors.New("jwtx: issuer is required")
	}
	if opts.Lifetime <= 0 {
		opts.Lifetime = DefaultKeyLifetime
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	target := numKeys(opts.NumKeys)
	now := opts.Now()

	records, err := opts.Store.ListSigningKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("jwtx: load signing keys: %w", err)
	}

	keyset := NewKeySet()
	var active []Signer
	for _, rec := range records {
		if rec.Algorithm != AlgorithmEdDSA {
			return nil, fmt.Errorf("jwtx: key %s: unsupported algorithm %q", rec.Kid, rec.Algorithm)
		}
		pemKey, err := opts.Cipher.Decrypt(rec.PrivateKeyEncrypted)
		if err != nil {
			return nil, fmt.Errorf("jwtx: decrypt key %s: %w", rec.Kid, err)
		}
		signer, err := NewSignerEdDSA(rec.Kid, pemKey)
		if err != nil {
			return nil, fmt.Errorf("jwtx: key %s: %w", rec.Kid, err)
		}
		if err := keyset.AddSigner(signer); err != nil {
			return nil, err
		}
		if rec.Active(now) && len(active) < target {
			active = append(active, signer)
		}
	}

	for len(active) < target {
		signer, rec, err := generateStoredKey(opts.Cipher, now, opts.Lifetime)
		if err != nil {
			return nil, err
		}
		if err := opts.Store.CreateSigningKey(ctx, rec); err != nil {
			return nil, fmt.Errorf("jwtx: store key %s: %w", rec.Kid, err)
		}
		if err := keyset.AddSigner(signer); err != nil {
			return nil, err
		}
		active = append(active, signer)
	}

	return &KeyManager{
		Verifier: NewVerifierEdDSA(keyset, opts.Issuer, opts.Audience).WithNow(opts.Now),
		KeySet:   keyset,
		signers:  active,
	}, nil
}

func generateStoredKey(c KeyEncrypter, now time.Time, lifetime time.Duration) (Signer, SigningKeyRecord, error) {
	kid, err := newKID()
	if err != nil {
		return nil, SigningKeyRecord{}, err
	}
	pemKey, err := cryptox.GenerateEd25519Key()
	if err != nil {
		return nil, SigningKeyRecord{}, err
	}
	signer, err := NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, SigningKeyRecord{}, err
	}
	sealed, err := c.Encrypt(pemKey)
	if err != nil {
		return nil, SigningKeyRecord{}, fmt.Errorf("jwtx: encrypt key %s: %w", kid, err)
	}
	return signer, SigningKeyRecord{
		ID:                  idx.NewAt(now).String(),
		Kid:                 kid,
		Algorithm:           AlgorithmEdDSA,
		PrivateKeyEncrypted: sealed,
		CreatedAt:           now,
		ExpiresAt:           now.Add(lifetime),
	}, nil
}
