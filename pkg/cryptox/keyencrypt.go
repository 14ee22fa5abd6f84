package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
)

var ErrCiphertextTooShort = errors.New("cryptox: ciphertext too short")

// KeyCipher seals private key PEMs with AES-256-GCM. Output is
// nonce || ciphertext || tag.
type KeyCipher struct {
	aead cipher.AEAD
}

// NewKeyCipher derives the AES-256 key from arbitrary master key material.
func NewKeyCipher(material []byte) (*KeyCipher, error) {
	if len(material) == 0 {
		return nil, errors.New("cryptox: empty master key")
	}
	key := sha256.Sum256(material)

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("cryptox: cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptox: gcm: %w", err)
	}
	return &KeyCipher{aead: aead}, nil
}

func (c *KeyCipher) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("cryptox: nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (c *KeyCipher) Decrypt(sealed []byte) ([]byte, error) {
	n := c.aead.NonceSize()
	if len(sealed) < n+c.aead.Overhead() {
		return nil, ErrCiphertextTooShort
	}
	plaintext, err := c.aead.Open(nil, sealed[:n], sealed[n:], nil)
	if err != nil {
		return nil, fmt.Errorf("cryptox: decrypt: %w", err)
	}
	return plaintext, nil
}
