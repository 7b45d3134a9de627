// Package cryptox implements the client-side decryption used by the
// API-key vault surface. The server encrypts each value with AES-256-GCM
// under a key derived from the API key and the vault's uniqueId, so two
// vaults read with the same API key never share an encryption key.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/vaulthub/vaulthub-cli/internal/common"
)

// KDF parameters. These mirror the server side exactly; changing them
// breaks decryption of every existing vault.
const (
	kdfIterations = 100000
	kdfKeyLen     = 32
)

// DeriveVaultKey derives the per-vault AES key from the API key and a
// vault-specific salt (the uniqueId, or the name on the by-name path).
func DeriveVaultKey(apiKey, salt string) []byte {
	return pbkdf2.Key([]byte(apiKey), []byte(salt), kdfIterations, kdfKeyLen, sha256.New)
}

// DecryptVaultValue decrypts a value fetched through the API-key surface.
// The wire format is base64(nonce || ciphertext). An empty input decrypts
// to the empty string.
func DecryptVaultValue(encryptedValue, apiKey, salt string) (string, error) {
	if encryptedValue == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(encryptedValue)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	gcm, err := newGCM(DeriveVaultKey(apiKey, salt))
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}
	return string(plaintext), nil
}

// EncryptVaultValue is the inverse of DecryptVaultValue. The client never
// uploads through this path in production; it exists so tests can build
// ciphertexts matching the server's format.
func EncryptVaultValue(plaintext, apiKey, salt string) (string, error) {
	gcm, err := newGCM(DeriveVaultKey(apiKey, salt))
	if err != nil {
		return "", err
	}

	nonce := common.GenerateRandByteArray(gcm.NonceSize())
	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(append(nonce, sealed...)), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}
