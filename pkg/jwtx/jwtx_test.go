package jwtx_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/democat/pkg/cryptox"
	"github.com/aussiebroadwan/democat/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://catalog.test"

func newSigner(t *testing.T, kid string) *jwtx.EdDSASigner {
	t.Helper()
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	s, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	return s
}

func accessClaims(ttl time.Duration) jwtx.Claims {
	return jwtx.NewAccessClaims(jwtx.AccessClaims{
		Subject:  "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
		Role:     "viewer",
		Scopes:   []string{"catalog:read", "requests:create"},
		Email:    "ana@example.com",
		Name:     "Ana",
		Issuer:   testIssuer,
		Audience: []string{"democat"},
		TTL:      ttl,
	}, time.Now().UTC())
}

func TestSignAndVerify(t *testing.T) {
	signer := newSigner(t, "k1")
	require.Equal(t, "EdDSA", signer.Alg())

	claims := accessClaims(5 * time.Minute)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	got, err := jwtx.NewVerifierEdDSA(keys, testIssuer, []string{"democat"}).Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, got.Subject)
	require.Equal(t, "viewer", got.Role)
	require.Equal(t, "ana@example.com", got.Email)
	require.ElementsMatch(t, claims.Scopes, got.Scopes)
	require.True(t, got.HasScope("requests:create"))
	require.False(t, got.HasScope("admin:write"))
	require.NotEmpty(t, got.ID)
}

func TestVerifyFailures(t *testing.T) {
	signer := newSigner(t, "k1")
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := signer.Sign(accessClaims(time.Minute))
		require.NoError(t, err)
		_, err = jwtx.NewVerifierEdDSA(keys, "someone-else", nil).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		token, err := signer.Sign(accessClaims(time.Minute))
		require.NoError(t, err)
		_, err = jwtx.NewVerifierEdDSA(keys, testIssuer, []string{"other"}).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := signer.Sign(accessClaims(-time.Hour))
		require.NoError(t, err)
		_, err = jwtx.NewVerifierEdDSA(keys, testIssuer, nil).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("unknown key", func(t *testing.T) {
		token, err := newSigner(t, "stranger").Sign(accessClaims(time.Minute))
		require.NoError(t, err)
		_, err = jwtx.NewVerifierEdDSA(keys, testIssuer, nil).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwtx.NewVerifierEdDSA(keys, testIssuer, nil).Verify("not.a.jwt")
		require.Error(t, err)
	})
}

func TestKeySetPublishesAndReloadsJWKS(t *testing.T) {
	a, b := newSigner(t, "a"), newSigner(t, "b")

	src := jwtx.NewKeySet()
	require.NoError(t, src.AddSigner(a))
	require.NoError(t, src.AddSigner(b))
	require.Error(t, src.AddSigner(a), "duplicate kid")

	raw, err := json.Marshal(src.PublicJWKS())
	require.NoError(t, err)

	var jwks jwtx.JWKS
	require.NoError(t, json.Unmarshal(raw, &jwks))
	require.Len(t, jwks.Keys, 2)
	require.Equal(t, "OKP", jwks.Keys[0].Kty)
	require.Equal(t, "Ed25519", jwks.Keys[0].Crv)

	dst := jwtx.NewKeySet()
	require.False(t, dst.IsReady())
	require.NoError(t, dst.ResetFromJWKS(jwks))
	require.True(t, dst.IsReady())

	token, err := b.Sign(accessClaims(time.Minute))
	require.NoError(t, err)
	_, err = jwtx.NewVerifierEdDSA(dst, testIssuer, nil).Verify(token)
	require.NoError(t, err)

	_, err = dst.Get("missing")
	require.ErrorIs(t, err, jwtx.ErrNoKey)
}

func TestEphemeralKeyManager(t *testing.T) {
	_, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{})
	require.Error(t, err)

	tests := []struct {
		name    string
		numKeys int
		want    int
	}{
		{"default", 0, 3},
		{"single", 1, 1},
		{"capped", 50, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
				Issuer:  testIssuer,
				NumKeys: tt.numKeys,
			})
			require.NoError(t, err)
			require.True(t, km.IsReady())
			require.Equal(t, tt.want, km.NumSigners())
			require.Len(t, km.KeySet.PublicJWKS().Keys, tt.want)

			for range 5 {
				token, err := km.Signer().Sign(accessClaims(time.Minute))
				require.NoError(t, err)
				_, err = km.Verifier.Verify(token)
				require.NoError(t, err)
			}
		})
	}
}

func TestVerifierUsesInjectedClock(t *testing.T) {
	signer := newSigner(t, "k1")
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	issued := time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC)
	claims := jwtx.NewAccessClaims(jwtx.AccessClaims{Subject: "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", Issuer: testIssuer, TTL: time.Hour}, issued)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = jwtx.NewVerifierEdDSA(keys, testIssuer, nil).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)

	at := issued.Add(30 * time.Minute)
	v := jwtx.NewVerifierEdDSA(keys, testIssuer, nil).WithNow(func() time.Time { return at })
	_, err = v.Verify(token)
	require.NoError(t, err)

	at = issued.Add(2 * time.Hour)
	_, err = v.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

type memKeyStore struct {
	mu   sync.Mutex
	keys []jwtx.SigningKeyRecord
}

func (m *memKeyStore) ListSigningKeys(context.Context) ([]jwtx.SigningKeyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]jwtx.SigningKeyRecord(nil), m.keys...), nil
}

func (m *memKeyStore) CreateSigningKey(_ context.Context, k jwtx.SigningKeyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, k)
	return nil
}

func TestPersistentKeyManagerSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	st := &memKeyStore{}
	cipher, err := cryptox.NewKeyCipher([]byte("master"))
	require.NoError(t, err)

	opts := jwtx.PersistentKeyManagerOptions{Store: st, Cipher: cipher, Issuer: testIssuer, NumKeys: 2}

	first, err := jwtx.NewPersistentKeyManager(ctx, opts)
	require.NoError(t, err)
	require.Equal(t, 2, first.NumSigners())
	require.Len(t, st.keys, 2)
	for _, k := range st.keys {
		require.Equal(t, jwtx.AlgorithmEdDSA, k.Algorithm)
		require.NotContains(t, string(k.PrivateKeyEncrypted), "PRIVATE KEY")
	}

	token, err := first.Signer().Sign(accessClaims(time.Minute))
	require.NoError(t, err)

	restarted, err := jwtx.NewPersistentKeyManager(ctx, opts)
	require.NoError(t, err)
	require.Len(t, st.keys, 2, "no new keys when enough are active")
	_, err = restarted.Verifier.Verify(token)
	require.NoError(t, err)
	require.ElementsMatch(t, first.KeySet.PublicJWKS().Keys, restarted.KeySet.PublicJWKS().Keys)
}

func TestPersistentKeyManagerReplacesExpiredKeys(t *testing.T) {
	ctx := context.Background()
	st := &memKeyStore{}
	cipher, err := cryptox.NewKeyCipher([]byte("master"))
	require.NoError(t, err)

	now := time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC)
	opts := jwtx.PersistentKeyManagerOptions{
		Store: st, Cipher: cipher, Issuer: testIssuer, NumKeys: 1,
		Lifetime: 24 * time.Hour,
		Now:      func() time.Time { return now },
	}

	old, err := jwtx.NewPersistentKeyManager(ctx, opts)
	require.NoError(t, err)
	oldKid := old.Signer().KID()

	now = now.Add(48 * time.Hour)
	km, err := jwtx.NewPersistentKeyManager(ctx, opts)
	require.NoError(t, err)
	require.Len(t, st.keys, 2)
	require.Equal(t, 1, km.NumSigners())
	require.NotEqual(t, oldKid, km.Signer().KID())

	// The retired key still verifies until it is pruned.
	_, err = km.KeySet.Get(oldKid)
	require.NoError(t, err)
}

func TestPersistentKeyManagerWrongMasterKey(t *testing.T) {
	ctx := context.Background()
	st := &memKeyStore{}
	good, err := cryptox.NewKeyCipher([]byte("master"))
	require.NoError(t, err)
	_, err = jwtx.NewPersistentKeyManager(ctx, jwtx.PersistentKeyManagerOptions{Store: st, Cipher: good, Issuer: testIssuer})
	require.NoError(t, err)

	bad, err := cryptox.NewKeyCipher([]byte("not-master"))
	require.NoError(t, err)
	_, err = jwtx.NewPersistentKeyManager(ctx, jwtx.PersistentKeyManagerOptions{Store: st, Cipher: bad, Issuer: testIssuer})
	require.Error(t, err)

	_, err = jwtx.NewPersistentKeyManager(ctx, jwtx.PersistentKeyManagerOptions{Issuer: testIssuer})
	require.Error(t, err)
}
