package vault

import (
	"fmt"
	"strings"

	"otpvault/internal/otp"
)

// Kind classifies an entry as counter-based or time-based.
type Kind string

const (
	KindHOTP Kind = "hotp"
	KindTOTP Kind = "totp"
)

// ParseKind maps a case-insensitive kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindHOTP:
		return KindHOTP, nil
	case KindTOTP:
		return KindTOTP, nil
	}
	return "", fmt.Errorf("unsupported otp kind: %q", s)
}

func (k Kind) String() string { return string(k) }

// Params carries the variant-specific state of an entry. Exactly one of
// HOTPParams or TOTPParams backs it, selected by the entry kind, so an
// HOTP entry cannot carry a period nor a TOTP entry a counter.
type Params interface {
	kind() Kind
}

// HOTPParams is the moving part of an HOTP entry. Counter is bumped by
// Store.Generate and never by anything else.
type HOTPParams struct {
	Counter uint64 `json:"counter"`
}

func (HOTPParams) kind() Kind { return KindHOTP }

// TOTPParams holds the validity window of a TOTP entry in seconds.
type TOTPParams struct {
	Period uint `json:"period"`
}

func (TOTPParams) kind() Kind { return KindTOTP }

// Entry is one managed OTP secret.
type Entry struct {
	Alias     string
	Secret    []byte
	Algorithm otp.Algorithm
	Digits    int
	Issuer    string
	Label     string
	Params    Params
}

// NewHOTP builds an HOTP entry with the standard defaults (SHA1, 6 digits).
// Issuer and Label can be set on the result before it goes into a store.
func NewHOTP(alias string, secret []byte, counter uint64) Entry {
	return Entry{
		Alias:     alias,
		Secret:    secret,
		Algorithm: otp.DefaultAlgorithm,
		Digits:    otp.DefaultDigits,
		Params:    HOTPParams{Counter: counter},
	}
}

// NewTOTP builds a TOTP entry with the standard defaults (SHA1, 6 digits).
func NewTOTP(alias string, secret []byte, period uint) Entry {
	return Entry{
		Alias:     alias,
		Secret:    secret,
		Algorithm: otp.DefaultAlgorithm,
		Digits:    otp.DefaultDigits,
		Params:    TOTPParams{Period: period},
	}
}

// Kind reports the entry variant. It is derived from Params so the two can
// never disagree.
func (e Entry) Kind() Kind {
	if e.Params == nil {
		return ""
	}
	return e.Params.kind()
}

// Validate enforces the construction-time invariants: non-empty alias and
// secret, a supported digest, bounded digits, a positive period for TOTP.
// Issuer and label must not contain a colon, which keeps the otpauth URI
// form unambiguous.
func (e Entry) Validate() error {
	if e.Alias == "" {
		return fmt.Errorf("%w: alias must not be empty", ErrInvalidEntry)
	}
	if len(e.Secret) == 0 {
		return fmt.Errorf("%w: secret must not be empty", ErrInvalidEntry)
	}
	if !e.Algorithm.Valid() {
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidEntry, string(e.Algorithm))
	}
	if !otp.ValidDigits(e.Digits) {
		return fmt.Errorf("%w: digits must be %d..%d, got %d", ErrInvalidEntry, otp.MinDigits, otp.MaxDigits, e.Digits)
	}
	if strings.Contains(e.Issuer, ":") {
		return fmt.Errorf("%w: issuer must not contain a colon", ErrInvalidEntry)
	}
	if strings.Contains(e.Label, ":") {
		return fmt.Errorf("%w: label must not contain a colon", ErrInvalidEntry)
	}

	switch p := e.Params.(type) {
	case HOTPParams:
		// Any counter value is valid; exhaustion is handled at generation.
	case TOTPParams:
		if p.Period == 0 {
			return fmt.Errorf("%w: period must be positive", ErrInvalidEntry)
		}
	default:
		return fmt.Errorf("%w: missing hotp/totp parameters", ErrInvalidEntry)
	}
	return nil
}

// clone returns a deep copy so store mutations never alias caller slices.
func (e Entry) clone() Entry {
	c := e
	c.Secret = make([]byte, len(e.Secret))
	copy(c.Secret, e.Secret)
	return c
}
