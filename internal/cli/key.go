package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"otpvault/internal/cryptox"
	"otpvault/internal/keyring"
	"otpvault/internal/vault"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Print the master key stored in the keyring",
	Long: `Prints the base64 master key for the configured vault, for backing it
up or moving it to another machine. Passphrase-derived keys are never
stored, so there is nothing to print for a --passphrase vault.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		blob, err := readVaultFile()
		if err != nil {
			return err
		}
		hdr, err := vault.ReadHeader(blob)
		if err != nil {
			return err
		}

		key, err := ring.Retrieve(hdr.ID)
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return errors.New("no master key in the keyring for this vault")
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cryptox.EncodeKey(key))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keyCmd)
}
