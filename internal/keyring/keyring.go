// Package keyring stores the vault master key in the operating system's
// credential service, so day-to-day commands never prompt for it. The key
// is addressed by the vault ID, which keeps multiple vaults on one machine
// from overwriting each other's key.
package keyring

import (
	"errors"
	"fmt"

	zkeyring "github.com/zalando/go-keyring"

	"otpvault/internal/cryptox"
)

// ErrNotFound is returned when no master key is stored for the vault.
var ErrNotFound = errors.New("master key not found in keyring")

// Keyring is the keychain surface the master-key lifecycle needs. The
// system implementation talks to the OS; InMemory backs tests.
type Keyring interface {
	Store(vaultID string, key []byte) error
	Retrieve(vaultID string) ([]byte, error)
	Delete(vaultID string) error
}

type systemKeyring struct {
	service string
}

// System returns a Keyring backed by the OS credential service under the
// given service name.
func System(service string) Keyring {
	return &systemKeyring{service: service}
}

func (k *systemKeyring) Store(vaultID string, key []byte) error {
	if err := zkeyring.Set(k.service, vaultID, cryptox.EncodeKey(key)); err != nil {
		return fmt.Errorf("storing master key: %w", err)
	}
	return nil
}

func (k *systemKeyring) Retrieve(vaultID string) ([]byte, error) {
	encoded, err := zkeyring.Get(k.service, vaultID)
	if err != nil {
		if errors.Is(err, zkeyring.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("retrieving master key: %w", err)
	}
	return cryptox.ParseKey(encoded)
}

func (k *systemKeyring) Delete(vaultID string) error {
	if err := zkeyring.Delete(k.service, vaultID); err != nil {
		if errors.Is(err, zkeyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting master key: %w", err)
	}
	return nil
}

type memoryKeyring struct {
	keys map[string][]byte
}

// InMemory returns a volatile Keyring for tests.
func InMemory() Keyring {
	return &memoryKeyring{keys: make(map[string][]byte)}
}

func (k *memoryKeyring) Store(vaultID string, key []byte) error {
	cp := make([]byte, len(key))
	copy(cp, key)
	k.keys[vaultID] = cp
	return nil
}

func (k *memoryKeyring) Retrieve(vaultID string) ([]byte, error) {
	key, ok := k.keys[vaultID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(key))
	copy(cp, key)
	return cp, nil
}

func (k *memoryKeyring) Delete(vaultID string) error {
	if _, ok := k.keys[vaultID]; !ok {
		return ErrNotFound
	}
	delete(k.keys, vaultID)
	return nil
}
