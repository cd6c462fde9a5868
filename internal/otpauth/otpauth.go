// Package otpauth maps between the otpauth:// key-provisioning URI format
// and vault entries, as described by the Google Authenticator Key Uri
// convention.
//
// The convention allows the issuer to appear twice: as a label prefix
// ("issuer:account") and as the issuer query parameter. The two are not
// required to match byte-for-byte; when both are present the query
// parameter wins and the prefix is lenient. This mirrors the ambiguity of
// the format itself and is deliberate, not a parsing bug.
package otpauth

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"otpvault/internal/base32x"
	"otpvault/internal/otp"
	"otpvault/internal/vault"
)

// Scheme is the only URL scheme the codec accepts.
const Scheme = "otpauth"

var (
	ErrInvalidURI      = errors.New("invalid otpauth uri")
	ErrUnsupportedKind = errors.New("unsupported otp kind")
	ErrMissingSecret   = errors.New("missing secret parameter")
	ErrInvalidSecret   = errors.New("invalid secret parameter")
	ErrInvalidDigits   = errors.New("invalid digits parameter")
	ErrInvalidLabel    = errors.New("invalid label")
)

// Parse decodes an otpauth URI into an entry for the given alias. Defaults
// follow the convention: SHA1, 6 digits, 30-second period, counter 0. Any
// parameter outside its bound fails; nothing is clamped.
func Parse(alias, raw string) (vault.Entry, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return vault.Entry{}, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	if u.Scheme != Scheme {
		return vault.Entry{}, fmt.Errorf("%w: scheme %q, expected %q", ErrInvalidURI, u.Scheme, Scheme)
	}

	kind, err := vault.ParseKind(u.Host)
	if err != nil {
		return vault.Entry{}, fmt.Errorf("%w: %q", ErrUnsupportedKind, u.Host)
	}

	labelIssuer, label, err := splitLabel(strings.TrimPrefix(u.Path, "/"))
	if err != nil {
		return vault.Entry{}, err
	}

	query := u.Query()

	secretParam := query.Get("secret")
	if secretParam == "" {
		return vault.Entry{}, ErrMissingSecret
	}
	secret, err := base32x.Decode(secretParam)
	if err != nil || len(secret) == 0 {
		return vault.Entry{}, fmt.Errorf("%w: not valid base32", ErrInvalidSecret)
	}

	algorithm, err := otp.ParseAlgorithm(query.Get("algorithm"))
	if err != nil {
		return vault.Entry{}, err
	}

	digits := otp.DefaultDigits
	if v := query.Get("digits"); v != "" {
		digits, err = strconv.Atoi(v)
		if err != nil || !otp.ValidDigits(digits) {
			return vault.Entry{}, fmt.Errorf("%w: %q", ErrInvalidDigits, v)
		}
	}

	// Issuer precedence: the query parameter wins over the label prefix.
	issuer := query.Get("issuer")
	if issuer == "" {
		issuer = labelIssuer
	}

	e := vault.Entry{
		Alias:     alias,
		Secret:    secret,
		Algorithm: algorithm,
		Digits:    digits,
		Issuer:    issuer,
		Label:     label,
	}

	switch kind {
	case vault.KindHOTP:
		var counter uint64
		if v := query.Get("counter"); v != "" {
			counter, err = strconv.ParseUint(v, 10, 64)
			if err != nil {
				return vault.Entry{}, fmt.Errorf("%w: counter %q", ErrInvalidURI, v)
			}
		}
		e.Params = vault.HOTPParams{Counter: counter}
	case vault.KindTOTP:
		period := otp.DefaultPeriod
		if v := query.Get("period"); v != "" {
			p, err := strconv.ParseUint(v, 10, 32)
			if err != nil || p == 0 {
				return vault.Entry{}, fmt.Errorf("%w: period %q", ErrInvalidURI, v)
			}
			period = uint(p)
		}
		e.Params = vault.TOTPParams{Period: period}
	}

	if err := e.Validate(); err != nil {
		return vault.Entry{}, err
	}
	return e, nil
}

// splitLabel separates the optional "issuer:" prefix from the account
// label. More than one colon makes the form ambiguous and is rejected, as
// the convention forbids colons inside either part. Leading spaces after
// the colon are stripped.
func splitLabel(path string) (issuer, label string, err error) {
	if strings.Count(path, ":") > 1 {
		return "", "", fmt.Errorf("%w: more than one colon in %q", ErrInvalidLabel, path)
	}
	if before, after, found := strings.Cut(path, ":"); found {
		return before, strings.TrimLeft(after, " "), nil
	}
	return "", path, nil
}

// Format renders an entry back into otpauth URI form, percent-encoding the
// label and issuer. The output round-trips through Parse to an equal
// entry.
func Format(e vault.Entry) string {
	var path string
	if e.Issuer != "" {
		path = url.PathEscape(e.Issuer) + ":" + url.PathEscape(e.Label)
	} else {
		path = url.PathEscape(e.Label)
	}

	query := url.Values{}
	query.Set("secret", base32x.Encode(e.Secret))
	query.Set("algorithm", string(e.Algorithm))
	query.Set("digits", strconv.Itoa(e.Digits))
	if e.Issuer != "" {
		query.Set("issuer", e.Issuer)
	}
	switch p := e.Params.(type) {
	case vault.HOTPParams:
		query.Set("counter", strconv.FormatUint(p.Counter, 10))
	case vault.TOTPParams:
		query.Set("period", strconv.FormatUint(uint64(p.Period), 10))
	}

	return fmt.Sprintf("%s://%s/%s?%s", Scheme, e.Kind(), path, query.Encode())
}
