package vault

import (
	"testing"

	"github.com/stretchr/testify/require"

	"otpvault/internal/otp"
)

func TestEntry_Validate(t *testing.T) {
	secret := []byte("12345678901234567890")

	valid := NewTOTP("mail", secret, 30)
	require.NoError(t, valid.Validate())
	require.Equal(t, KindTOTP, valid.Kind())

	tests := []struct {
		name  string
		entry Entry
	}{
		{"empty alias", NewTOTP("", secret, 30)},
		{"empty secret", NewTOTP("mail", nil, 30)},
		{"zero period", NewTOTP("mail", secret, 0)},
		{"missing params", Entry{Alias: "mail", Secret: secret, Algorithm: otp.AlgorithmSHA1, Digits: 6}},
		{"bad algorithm", func() Entry {
			e := NewHOTP("mail", secret, 0)
			e.Algorithm = "MD5"
			return e
		}()},
		{"digits too small", func() Entry {
			e := NewHOTP("mail", secret, 0)
			e.Digits = 5
			return e
		}()},
		{"digits too large", func() Entry {
			e := NewTOTP("mail", secret, 30)
			e.Digits = 11
			return e
		}()},
		{"colon in issuer", func() Entry {
			e := NewTOTP("mail", secret, 30)
			e.Issuer = "Big:Corp"
			return e
		}()},
		{"colon in label", func() Entry {
			e := NewTOTP("mail", secret, 30)
			e.Label = "a:b"
			return e
		}()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.entry.Validate(), ErrInvalidEntry)
		})
	}
}

func TestEntry_KindFollowsParams(t *testing.T) {
	h := NewHOTP("a", []byte("secret"), 7)
	require.Equal(t, KindHOTP, h.Kind())
	require.Equal(t, HOTPParams{Counter: 7}, h.Params)

	tt := NewTOTP("b", []byte("secret"), 60)
	require.Equal(t, KindTOTP, tt.Kind())
	require.Equal(t, TOTPParams{Period: 60}, tt.Params)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("TOTP")
	require.NoError(t, err)
	require.Equal(t, KindTOTP, k)

	k, err = ParseKind("hotp")
	require.NoError(t, err)
	require.Equal(t, KindHOTP, k)

	_, err = ParseKind("motp")
	require.Error(t, err)
}
