package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"otpvault/internal/cryptox"
	"otpvault/internal/filex"
	"otpvault/internal/keyring"
	"otpvault/internal/vault"
)

func readVaultFile() ([]byte, error) {
	blob, err := os.ReadFile(cfg.VaultPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no vault at %s, run \"otpvault init\" first", cfg.VaultPath)
		}
		return nil, fmt.Errorf("reading vault file: %w", err)
	}
	return blob, nil
}

// resolveKey produces the master key for an existing vault. Passphrase
// mode derives it from the salt in the header; otherwise the keyring is
// consulted, falling back to a hidden prompt for the encoded key.
func resolveKey(hdr vault.Header) ([]byte, error) {
	if passphraseFlag {
		pass, err := promptSecret(os.Stderr, "Passphrase: ")
		if err != nil {
			return nil, err
		}
		defer cryptox.Wipe(pass)
		return cryptox.DeriveKey(pass, hdr.Salt), nil
	}

	key, err := ring.Retrieve(hdr.ID)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, keyring.ErrNotFound) {
		return nil, err
	}

	encoded, err := promptSecret(os.Stderr, "Master key: ")
	if err != nil {
		return nil, err
	}
	return cryptox.ParseKey(string(encoded))
}

// openVault loads and decrypts the configured vault, returning the store
// together with the key so callers can seal it back after mutations.
func openVault() (*vault.Store, []byte, error) {
	blob, err := readVaultFile()
	if err != nil {
		return nil, nil, err
	}
	hdr, err := vault.ReadHeader(blob)
	if err != nil {
		return nil, nil, err
	}
	key, err := resolveKey(hdr)
	if err != nil {
		return nil, nil, err
	}
	s, err := vault.Open(key, blob)
	if err != nil {
		return nil, nil, err
	}
	return s, key, nil
}

// saveVault seals the store and replaces the vault file atomically, so a
// crash mid-write leaves the previous version intact.
func saveVault(s *vault.Store, key []byte) error {
	blob, err := s.Seal(key)
	if err != nil {
		return err
	}
	if err := filex.EnsureDir(filepath.Dir(cfg.VaultPath)); err != nil {
		return err
	}
	return filex.WriteAtomic(cfg.VaultPath, blob, 0o600)
}
