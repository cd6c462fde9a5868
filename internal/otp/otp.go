package otp

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"
	"time"
)

const (
	// MinDigits and MaxDigits bound the output code length. 6 and 8 are the
	// values seen in the wild; 10 digits is the largest length a 31-bit
	// truncated value can still fill.
	MinDigits = 6
	MaxDigits = 10

	// DefaultDigits is the standard 6-digit code length.
	DefaultDigits = 6

	// DefaultPeriod is the standard 30-second TOTP validity window.
	DefaultPeriod uint = 30
)

// pow10 avoids math.Pow float rounding for the small exponents we need.
func pow10(n int) uint64 {
	v := uint64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// ValidDigits reports whether digits is inside the supported bound.
func ValidDigits(digits int) bool {
	return digits >= MinDigits && digits <= MaxDigits
}

func checkParams(secret []byte, alg Algorithm, digits int) error {
	if len(secret) == 0 {
		return fmt.Errorf("%w: empty secret", ErrInvalidParameters)
	}
	if !ValidDigits(digits) {
		return fmt.Errorf("%w: digits must be %d..%d, got %d", ErrInvalidParameters, MinDigits, MaxDigits, digits)
	}
	if !alg.Valid() {
		return fmt.Errorf("%w: algorithm %q", ErrInvalidParameters, string(alg))
	}
	return nil
}

// HOTP computes an RFC 4226 code: an HMAC over the 8-byte big-endian
// counter, dynamically truncated to a 31-bit value and reduced modulo
// 10^digits. The result is a zero-padded decimal string of exactly
// digits characters.
func HOTP(secret []byte, counter uint64, alg Algorithm, digits int) (string, error) {
	if err := checkParams(secret, alg, digits); err != nil {
		return "", err
	}

	h, err := alg.hashFunc()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(h, secret)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// Dynamic truncation: the low nibble of the last byte selects a 4-byte
	// window, the top bit of which is masked off.
	offset := sum[len(sum)-1] & 0x0f
	bin := uint64(sum[offset]&0x7f)<<24 |
		uint64(sum[offset+1])<<16 |
		uint64(sum[offset+2])<<8 |
		uint64(sum[offset+3])

	code := bin % pow10(digits)
	return fmt.Sprintf("%0*d", digits, code), nil
}

// TOTP computes an RFC 6238 code for the window containing t: the counter
// is floor(unix/period) and the rest is HOTP. Times before the epoch are
// rejected.
func TOTP(secret []byte, t time.Time, period uint, alg Algorithm, digits int) (string, error) {
	if period == 0 {
		return "", fmt.Errorf("%w: period must be positive", ErrInvalidParameters)
	}
	unix := t.Unix()
	if unix < 0 {
		return "", fmt.Errorf("%w: time before unix epoch", ErrInvalidParameters)
	}
	return HOTP(secret, uint64(unix)/uint64(period), alg, digits)
}

// SecondsRemaining reports how long the TOTP code for the window containing
// t stays valid: period - (unix mod period), always in (0, period].
func SecondsRemaining(t time.Time, period uint) (uint, error) {
	if period == 0 {
		return 0, fmt.Errorf("%w: period must be positive", ErrInvalidParameters)
	}
	unix := t.Unix()
	if unix < 0 {
		return 0, fmt.Errorf("%w: time before unix epoch", ErrInvalidParameters)
	}
	return period - uint(uint64(unix)%uint64(period)), nil
}
