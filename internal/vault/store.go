package vault

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"otpvault/internal/cryptox"
	"otpvault/internal/otp"
)

// Store is the authoritative in-memory collection of entries, keyed by
// alias. It is created by New or decrypted from disk by Open, and only
// Seal turns it back into on-disk bytes.
type Store struct {
	id      uuid.UUID
	salt    []byte
	entries map[string]Entry
}

// New creates an empty store with a fresh vault ID and KDF salt.
func New() (*Store, error) {
	salt, err := cryptox.GenerateSalt()
	if err != nil {
		return nil, err
	}
	return &Store{
		id:      uuid.New(),
		salt:    salt,
		entries: make(map[string]Entry),
	}, nil
}

// ID identifies this vault instance; the keyring account for the master
// key is named after it so two vaults never clobber each other's key.
func (s *Store) ID() string { return s.id.String() }

// Salt is the argon2 salt for the passphrase mode. It is public data and
// lives in the plaintext blob header.
func (s *Store) Salt() []byte { return s.salt }

// Len reports the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// Add inserts a validated entry. Inserting an alias that already exists
// fails with ErrDuplicateAlias; there is no implicit overwrite.
func (s *Store) Add(e Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if _, ok := s.entries[e.Alias]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAlias, e.Alias)
	}
	s.entries[e.Alias] = e.clone()
	return nil
}

// Remove deletes the entry for alias.
func (s *Store) Remove(alias string) error {
	if _, ok := s.entries[alias]; !ok {
		return fmt.Errorf("%w: %q", ErrAliasNotFound, alias)
	}
	delete(s.entries, alias)
	return nil
}

// Rename moves an entry to a new alias. The target must be free.
func (s *Store) Rename(oldAlias, newAlias string) error {
	e, ok := s.entries[oldAlias]
	if !ok {
		return fmt.Errorf("%w: %q", ErrAliasNotFound, oldAlias)
	}
	if newAlias == "" {
		return fmt.Errorf("%w: alias must not be empty", ErrInvalidEntry)
	}
	if _, ok := s.entries[newAlias]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAlias, newAlias)
	}
	delete(s.entries, oldAlias)
	e.Alias = newAlias
	s.entries[newAlias] = e
	return nil
}

// Get is the pure read: it returns the entry as stored and never touches
// counters. Use Generate to produce a code.
func (s *Store) Get(alias string) (Entry, error) {
	e, ok := s.entries[alias]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrAliasNotFound, alias)
	}
	return e.clone(), nil
}

// List returns all entries, alphabetical by alias.
func (s *Store) List() []Entry {
	aliases := make([]string, 0, len(s.entries))
	for alias := range s.entries {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	out := make([]Entry, 0, len(aliases))
	for _, alias := range aliases {
		out = append(out, s.entries[alias].clone())
	}
	return out
}

// Code is the result of Generate.
type Code struct {
	Code string
	Kind Kind

	// Remaining is how long the code stays valid, TOTP only.
	Remaining uint

	// Counter is the value the code was generated with, HOTP only.
	Counter uint64
}

// Generate produces the next code for alias. For TOTP entries it is a pure
// read of the clock. For HOTP entries it is a mutation disguised as a
// read: the counter is incremented first, the code is computed from the
// incremented value, and that value is what the caller must persist via
// Seal before showing the code to anyone. A counter at the 64-bit boundary
// fails with ErrCounterExhausted and leaves the entry unchanged.
func (s *Store) Generate(alias string, now time.Time) (Code, error) {
	e, ok := s.entries[alias]
	if !ok {
		return Code{}, fmt.Errorf("%w: %q", ErrAliasNotFound, alias)
	}

	switch p := e.Params.(type) {
	case TOTPParams:
		code, err := otp.TOTP(e.Secret, now, p.Period, e.Algorithm, e.Digits)
		if err != nil {
			return Code{}, err
		}
		remaining, err := otp.SecondsRemaining(now, p.Period)
		if err != nil {
			return Code{}, err
		}
		return Code{Code: code, Kind: KindTOTP, Remaining: remaining}, nil

	case HOTPParams:
		if p.Counter == math.MaxUint64 {
			return Code{}, fmt.Errorf("%w: %q", ErrCounterExhausted, alias)
		}
		p.Counter++
		code, err := otp.HOTP(e.Secret, p.Counter, e.Algorithm, e.Digits)
		if err != nil {
			return Code{}, err
		}
		e.Params = p
		s.entries[alias] = e
		return Code{Code: code, Kind: KindHOTP, Counter: p.Counter}, nil
	}

	return Code{}, fmt.Errorf("%w: missing hotp/totp parameters", ErrInvalidEntry)
}
