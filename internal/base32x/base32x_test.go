package base32x

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_CaseAndSpacingInsensitive(t *testing.T) {
	want, err := Decode("JBSWY3DP")
	require.NoError(t, err)
	require.Equal(t, []byte("Hello"), want)

	got, err := Decode("jbsw y3dp")
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = Decode("jbsw-y3dp")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDecode_PaddingAgnostic(t *testing.T) {
	padded, err := Decode("MZXW6===")
	require.NoError(t, err)

	unpadded, err := Decode("MZXW6")
	require.NoError(t, err)
	require.Equal(t, []byte("foo"), unpadded)
	require.Equal(t, unpadded, padded)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode("not!base32")
	require.Error(t, err)
}

func TestEncode_RoundTrip(t *testing.T) {
	secret := []byte("12345678901234567890")
	got, err := Decode(Encode(secret))
	require.NoError(t, err)
	require.Equal(t, secret, got)
}
