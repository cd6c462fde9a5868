// Package base32x wraps encoding/base32 with the tolerance OTP secrets
// need in practice. RFC 3548 calls the encoding case-insensitive, yet some
// services hand out lowercase secrets (Google among them) and humans add
// spaces when copying them, so Decode normalizes before decoding.
package base32x

import (
	"encoding/base32"
	"fmt"
	"strings"
)

var codec = base32.StdEncoding.WithPadding(base32.NoPadding)

// Decode decodes a Base32 secret, accepting lowercase input, embedded
// spaces or dashes, and any amount of trailing padding.
func Decode(s string) ([]byte, error) {
	normalized := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-':
			return -1
		}
		return r
	}, strings.ToUpper(s))
	normalized = strings.TrimRight(normalized, "=")

	b, err := codec.DecodeString(normalized)
	if err != nil {
		return nil, fmt.Errorf("invalid base32: %w", err)
	}
	return b, nil
}

// Encode encodes raw bytes as uppercase unpadded Base32, the form
// authenticator apps expect in otpauth URIs.
func Encode(b []byte) string {
	return codec.EncodeToString(b)
}
