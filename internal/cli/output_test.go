package cli

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"otpvault/internal/vault"
)

func TestPrintCode_TOTP(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	printCode(&out, "github", vault.Code{Code: "287082", Kind: vault.KindTOTP, Remaining: 25}, false)
	require.Equal(t, "github: 287082  (25s left)\n", out.String())
}

func TestPrintCode_HOTP(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	printCode(&out, "bank", vault.Code{Code: "755224", Kind: vault.KindHOTP, Counter: 1}, false)
	require.Equal(t, "bank: 755224  (counter 1)\n", out.String())
}

func TestPrintCode_CodeOnly(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	printCode(&out, "github", vault.Code{Code: "287082", Kind: vault.KindTOTP, Remaining: 3}, true)
	require.Equal(t, "287082\n", out.String())
}
