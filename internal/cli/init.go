package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"otpvault/internal/cryptox"
	"otpvault/internal/vault"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new vault and master key",
	Long: `Creates an empty vault at the configured path. By default a random
master key is generated and stored in the system keyring; with --passphrase
the key is derived from a passphrase instead and nothing is stored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := os.Stat(cfg.VaultPath); err == nil {
			return fmt.Errorf("vault already exists at %s", cfg.VaultPath)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}

		s, err := vault.New()
		if err != nil {
			return err
		}

		var key []byte
		if passphraseFlag {
			pass, err := promptSecretConfirm(os.Stderr, "Passphrase: ")
			if err != nil {
				return err
			}
			key = cryptox.DeriveKey(pass, s.Salt())
			cryptox.Wipe(pass)
		} else {
			key, err = cryptox.GenerateKey()
			if err != nil {
				return err
			}
		}

		if err := saveVault(s, key); err != nil {
			return err
		}

		if !quietFlag {
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty vault at %s\n", cfg.VaultPath)
		}
		if passphraseFlag {
			return nil
		}

		if err := ring.Store(s.ID(), key); err != nil {
			log.Warn(cmd.Context(), "could not store master key in the system keyring", "error", err)
			fmt.Fprintln(cmd.OutOrStdout(), "Keep this master key somewhere safe, it cannot be recovered:")
			fmt.Fprintln(cmd.OutOrStdout(), cryptox.EncodeKey(key))
			return nil
		}
		if !quietFlag {
			fmt.Fprintln(cmd.OutOrStdout(), "Master key stored in the system keyring.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
