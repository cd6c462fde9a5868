package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	k1, err := GenerateKey()
	require.NoError(t, err)
	require.Len(t, k1, KeySize)

	k2, err := GenerateKey()
	require.NoError(t, err)
	require.NotEqual(t, k1, k2)
}

func TestLoadKey(t *testing.T) {
	raw := bytes.Repeat([]byte{0xab}, KeySize)
	key, err := LoadKey(raw)
	require.NoError(t, err)
	require.Equal(t, raw, key)

	// LoadKey copies; mutating the input must not alias the key.
	raw[0] = 0
	require.Equal(t, byte(0xab), key[0])

	_, err = LoadKey(raw[:16])
	require.ErrorIs(t, err, ErrInvalidKey)

	_, err = LoadKey(nil)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestParseKey_RoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	parsed, err := ParseKey(EncodeKey(key))
	require.NoError(t, err)
	require.Equal(t, key, parsed)

	_, err = ParseKey("not base64!!!")
	require.ErrorIs(t, err, ErrInvalidKey)

	_, err = ParseKey("c2hvcnQ=") // valid base64, wrong length
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	pass := []byte("correct horse battery staple")
	salt := []byte("0123456789abcdef")

	k1 := DeriveKey(pass, salt)
	k2 := DeriveKey(pass, salt)
	require.Equal(t, k1, k2)
	require.Len(t, k1, KeySize)

	k3 := DeriveKey(pass, []byte("fedcba9876543210"))
	require.NotEqual(t, k1, k3)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	plaintext := []byte(`{"version":1}`)
	nonce, ciphertext, err := Seal(key, plaintext)
	require.NoError(t, err)
	require.Len(t, nonce, NonceSize)

	got, err := Open(key, nonce, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestSeal_FreshNoncePerCall(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	n1, _, err := Seal(key, []byte("x"))
	require.NoError(t, err)
	n2, _, err := Seal(key, []byte("x"))
	require.NoError(t, err)
	require.NotEqual(t, n1, n2)
}

func TestOpen_WrongKeyOrTamper(t *testing.T) {
	key, err := GenerateKey()
	require.NoError(t, err)

	nonce, ciphertext, err := Seal(key, []byte("secret"))
	require.NoError(t, err)

	other, err := GenerateKey()
	require.NoError(t, err)
	_, err = Open(other, nonce, ciphertext)
	require.ErrorIs(t, err, ErrDecryptFailed)

	ciphertext[0] ^= 0xff
	_, err = Open(key, nonce, ciphertext)
	require.ErrorIs(t, err, ErrDecryptFailed)
}
