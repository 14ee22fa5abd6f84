package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadOrCreatePepper reads the pepper stored at path, generating and
// persisting a new one on first start. Losing this file invalidates every
// stored password hash.
func LoadOrCreatePepper(path string) (string, error) {
	return loadOrCreateSecret(path, "pepper")
}

// LoadOrCreateMasterKey reads the key material that encrypts signing keys at
// rest, generating it on first start. Losing this file makes every stored
// signing key unreadable.
func LoadOrCreateMasterKey(path string) ([]byte, error) {
	secret, err := loadOrCreateSecret(path, "master key")
	if err != nil {
		return nil, err
	}
	return []byte(secret), nil
}

func loadOrCreateSecret(path, what string) (string, error) {
	path = filepath.Clean(path)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("cryptox: %s file %s is empty", what, path)
		}
		return secret, nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("cryptox: read %s: %w", what, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("cryptox: create %s dir: %w", what, err)
	}

	buf := make([]byte, keyLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	secret := base64.RawURLEncoding.EncodeToString(buf)

	if err := os.WriteFile(path, []byte(secret), 0o600); err != nil {
		return "", fmt.Errorf("cryptox: write %s: %w", what, err)
	}
	return secret, nil
}
