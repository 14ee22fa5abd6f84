package jwtx

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/aussiebroadwan/democat/pkg/cryptox"
)

const (
	defaultNumKeys = 3
	maxNumKeys     = 10
)

// KeyManager owns the signing keys of one catalog instance and the verifier
// that accepts them.
type KeyManager struct {
	Verifier Verifier
	KeySet   *KeySet

	signers []Signer
}

type KeyManagerOptions struct {
	Issuer   string
	Audience []string

	// NumKeys defaults to 3 and is capped at 10.
	NumKeys int

	// Now is the verifier's clock. Defaults to time.Now.
	Now func() time.Time
}

func numKeys(n int) int {
	if n <= 0 {
		n = defaultNumKeys
	}
	return min(n, maxNumKeys)
}

// newKID returns a random key id with the catalog prefix.
func newKID() (string, error) {
	kid, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return "", fmt.Errorf("jwtx: key id: %w", err)
	}
	return "democat-" + kid, nil
}

// NewEphemeralKeyManager generates NumKeys Ed25519 signing keys and a
// verifier that accepts any of them. Keys live only in memory, so a restart
// invalidates outstanding tokens.
func NewEphemeralKeyManager(opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, errors.New("jwtx: issuer is required")
	}

	n := numKeys(opts.NumKeys)

	keyset := NewKeySet()
	signers := make([]Signer, 0, n)

	for i := range n {
		kid, err := newKID()
		if err != nil {
			return nil, err
		}

		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, err
		}

		signer, err := NewSignerEdDSA(kid, pemKey)
		if err != nil {
			return nil, fmt.Errorf("jwtx: signer %d: %w", i+1, err)
		}
		if err := keyset.AddSigner(signer); err != nil {
			return nil, fmt.Errorf("jwtx: signer %d: %w", i+1, err)
		}
		signers = append(signers, signer)
	}

	return &KeyManager{
		Verifier: NewVerifierEdDSA(keyset, opts.Issuer, opts.Audience).WithNow(opts.Now),
		KeySet:   keyset,
		signers:  signers,
	}, nil
}

// Signer picks one of the active keys at random.
func (km *KeyManager) Signer() Signer {
	if len(km.signers) == 0 {
		return nil
	}
	return km.signers[rand.IntN(len(km.signers))]
}

func (km *KeyManager) NumSigners() int { return len(km.signers) }

func (km *KeyManager) IsReady() bool { return km.KeySet.IsReady() }
