// Package cryptox holds the symmetric-crypto plumbing for the vault: master
// key generation and validation, AES-256-GCM sealing of the serialized
// store, and the argon2id derivation used by the passphrase mode.
//
// Nothing here logs or persists key material.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the master-key length: 32 bytes for AES-256.
	KeySize = 32

	// NonceSize is the GCM nonce length. A fresh nonce is generated for
	// every Seal call and stored next to the ciphertext, never reused.
	NonceSize = 12

	// SaltSize is the argon2 salt length for passphrase-derived keys.
	SaltSize = 16
)

var (
	// ErrInvalidKey is returned for key material of the wrong length or
	// encoding.
	ErrInvalidKey = errors.New("invalid master key")

	// ErrDecryptFailed is returned when GCM authentication fails. A wrong
	// key and a corrupted blob are deliberately indistinguishable.
	ErrDecryptFailed = errors.New("decryption failed")
)

// GenerateKey produces a fresh random master key. An entropy-source failure
// is the one error callers should treat as fatal.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generating master key: %w", err)
	}
	return key, nil
}

// LoadKey validates externally supplied raw key material.
func LoadKey(raw []byte) ([]byte, error) {
	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKey, KeySize, len(raw))
	}
	key := make([]byte, KeySize)
	copy(key, raw)
	return key, nil
}

// ParseKey decodes the base64 text form of a master key, the shape the CLI
// prints at init time and the keyring stores.
func ParseKey(s string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid base64", ErrInvalidKey)
	}
	return LoadKey(raw)
}

// EncodeKey is the inverse of ParseKey.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DeriveKey turns a passphrase and salt into a master key using
// argon2id(time=1, memory=64MiB, threads=4).
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

// GenerateSalt produces a random argon2 salt.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	return salt, nil
}

// Wipe zeroes a byte slice holding secret material. Best effort only, the
// runtime may have copied the data elsewhere.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Seal encrypts plaintext with AES-256-GCM under key. The nonce is
// generated fresh and returned separately so the caller decides the blob
// layout.
func Seal(key, plaintext []byte) (nonce, ciphertext []byte, err error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generating nonce: %w", err)
	}

	return nonce, aead.Seal(nil, nonce, plaintext, nil), nil
}

// Open authenticates and decrypts ciphertext produced by Seal.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKey, KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, NonceSize)
}
