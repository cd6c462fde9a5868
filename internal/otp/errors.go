package otp

import "errors"

var (
	// ErrInvalidParameters covers precondition failures: empty secret,
	// digits outside the supported bound, or a zero period. Callers should
	// match it with errors.Is.
	ErrInvalidParameters = errors.New("invalid otp parameters")

	// ErrUnsupportedAlgorithm is returned for digests outside SHA1/SHA256/SHA512.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)
