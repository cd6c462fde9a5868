package vault

import (
	"encoding/json"
	"fmt"

	"otpvault/internal/base32x"
	"otpvault/internal/otp"
)

// schemaVersion marks the JSON layout inside the sealed blob and the
// export format. Bump it when the shape changes; Open rejects versions it
// does not know instead of guessing.
const schemaVersion = 1

type storeJSON struct {
	Version int                  `json:"version"`
	Entries map[string]entryJSON `json:"entries"`
}

// entryJSON mirrors Entry with the kind discriminator spelled out and the
// variant params kept as a raw message until the kind is known.
type entryJSON struct {
	Kind      string          `json:"kind"`
	Secret    string          `json:"secret"`
	Algorithm string          `json:"algorithm"`
	Digits    int             `json:"digits"`
	Issuer    string          `json:"issuer,omitempty"`
	Label     string          `json:"label,omitempty"`
	Params    json.RawMessage `json:"params"`
}

func marshalEntry(e Entry) (entryJSON, error) {
	params, err := json.Marshal(e.Params)
	if err != nil {
		return entryJSON{}, err
	}
	return entryJSON{
		Kind:      string(e.Kind()),
		Secret:    base32x.Encode(e.Secret),
		Algorithm: string(e.Algorithm),
		Digits:    e.Digits,
		Issuer:    e.Issuer,
		Label:     e.Label,
		Params:    params,
	}, nil
}

func unmarshalEntry(alias string, j entryJSON) (Entry, error) {
	kind, err := ParseKind(j.Kind)
	if err != nil {
		return Entry{}, err
	}
	alg, err := otp.ParseAlgorithm(j.Algorithm)
	if err != nil {
		return Entry{}, err
	}
	secret, err := base32x.Decode(j.Secret)
	if err != nil {
		return Entry{}, fmt.Errorf("secret for %q: %w", alias, err)
	}

	e := Entry{
		Alias:     alias,
		Secret:    secret,
		Algorithm: alg,
		Digits:    j.Digits,
		Issuer:    j.Issuer,
		Label:     j.Label,
	}

	switch kind {
	case KindHOTP:
		var p HOTPParams
		if err := json.Unmarshal(j.Params, &p); err != nil {
			return Entry{}, fmt.Errorf("hotp params for %q: %w", alias, err)
		}
		e.Params = p
	case KindTOTP:
		var p TOTPParams
		if err := json.Unmarshal(j.Params, &p); err != nil {
			return Entry{}, fmt.Errorf("totp params for %q: %w", alias, err)
		}
		e.Params = p
	}

	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Store) marshalPayload() ([]byte, error) {
	entries := make(map[string]entryJSON, len(s.entries))
	for alias, e := range s.entries {
		j, err := marshalEntry(e)
		if err != nil {
			return nil, err
		}
		entries[alias] = j
	}
	return json.Marshal(storeJSON{Version: schemaVersion, Entries: entries})
}

func (s *Store) unmarshalPayload(plaintext []byte) error {
	var payload storeJSON
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptVault, err)
	}
	if payload.Version != schemaVersion {
		return fmt.Errorf("%w: unsupported schema version %d", ErrCorruptVault, payload.Version)
	}

	entries := make(map[string]Entry, len(payload.Entries))
	for alias, j := range payload.Entries {
		e, err := unmarshalEntry(alias, j)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptVault, err)
		}
		entries[alias] = e
	}
	s.entries = entries
	return nil
}
