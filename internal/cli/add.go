package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"otpvault/internal/base32x"
	"otpvault/internal/otp"
	"otpvault/internal/otpauth"
	"otpvault/internal/vault"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an entry to the vault",
}

var addURICmd = &cobra.Command{
	Use:   "uri ALIAS",
	Short: "Add an entry from an otpauth:// URI",
	Long: `Prompts for an otpauth:// URI without echoing it (the secret is part
of the URI) and stores the entry under ALIAS.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, key, err := openVault()
		if err != nil {
			return err
		}

		raw, err := promptSecret(os.Stderr, "otpauth URI: ")
		if err != nil {
			return err
		}
		e, err := otpauth.Parse(args[0], string(raw))
		if err != nil {
			return err
		}
		return addEntry(cmd, s, key, e)
	},
}

var addHOTPCmd = &cobra.Command{
	Use:   "hotp ALIAS",
	Short: "Add a counter-based entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		counter, err := cmd.Flags().GetUint64("counter")
		if err != nil {
			return err
		}
		return addManual(cmd, args[0], func(secret []byte) vault.Entry {
			return vault.NewHOTP(args[0], secret, counter)
		})
	},
}

var addTOTPCmd = &cobra.Command{
	Use:   "totp ALIAS",
	Short: "Add a time-based entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := cmd.Flags().GetUint("period")
		if err != nil {
			return err
		}
		return addManual(cmd, args[0], func(secret []byte) vault.Entry {
			return vault.NewTOTP(args[0], secret, period)
		})
	},
}

// addManual prompts for a base32 secret and builds an entry from it,
// applying the shared flags before insertion.
func addManual(cmd *cobra.Command, alias string, build func(secret []byte) vault.Entry) error {
	s, key, err := openVault()
	if err != nil {
		return err
	}

	raw, err := promptSecretConfirm(os.Stderr, "Base32 secret: ")
	if err != nil {
		return err
	}
	secret, err := base32x.Decode(string(raw))
	if err != nil {
		return fmt.Errorf("invalid secret: %w", err)
	}

	e := build(secret)
	if e.Issuer, err = cmd.Flags().GetString("issuer"); err != nil {
		return err
	}
	if e.Label, err = cmd.Flags().GetString("label"); err != nil {
		return err
	}
	algName, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		return err
	}
	if e.Algorithm, err = otp.ParseAlgorithm(algName); err != nil {
		return err
	}
	if e.Digits, err = cmd.Flags().GetInt("digits"); err != nil {
		return err
	}
	return addEntry(cmd, s, key, e)
}

func addEntry(cmd *cobra.Command, s *vault.Store, key []byte, e vault.Entry) error {
	if err := s.Add(e); err != nil {
		return err
	}
	if err := saveVault(s, key); err != nil {
		return err
	}
	if !quietFlag {
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s).\n", e.Alias, e.Kind())
	}
	return nil
}

// entryFlags registers the options shared by the manual add commands.
func entryFlags(cmd *cobra.Command) {
	cmd.Flags().String("issuer", "", "issuer shown in exports and URIs")
	cmd.Flags().String("label", "", "account label shown in exports and URIs")
	cmd.Flags().String("algorithm", "", "HMAC digest: SHA1, SHA256 or SHA512 (default SHA1)")
	cmd.Flags().Int("digits", otp.DefaultDigits, "code length")
}

func init() {
	addHOTPCmd.Flags().Uint64("counter", 0, "initial counter value")
	addTOTPCmd.Flags().Uint("period", otp.DefaultPeriod, "validity window in seconds")
	entryFlags(addHOTPCmd)
	entryFlags(addTOTPCmd)
	addCmd.AddCommand(addURICmd, addHOTPCmd, addTOTPCmd)
	rootCmd.AddCommand(addCmd)
}
