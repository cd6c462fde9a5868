package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"otpvault/internal/config"
	"otpvault/internal/keyring"
	"otpvault/internal/logging"
)

var (
	cfgFile        string
	vaultPathFlag  string
	debugFlag      bool
	noColorFlag    bool
	passphraseFlag bool
	quietFlag      bool

	cfg  *config.Config
	log  logging.Logger
	ring keyring.Keyring
)

var rootCmd = &cobra.Command{
	Use:   "otpvault",
	Short: "Encrypted store for one-time password secrets",
	Long: `otpvault keeps HOTP and TOTP secrets in a single encrypted file and
generates codes from them on demand. The master key lives in the system
keyring by default, or can be derived from a passphrase with --passphrase.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if vaultPathFlag != "" {
		cfg.VaultPath = vaultPathFlag
	}
	if noColorFlag {
		cfg.Color = false
	}
	color.NoColor = !cfg.Color
	log = logging.New(os.Stderr, debugFlag)
	ring = keyring.System(cfg.KeyringService)
	log.Debug(cmd.Context(), "configuration resolved", "vault_path", cfg.VaultPath, "keyring_service", cfg.KeyringService)
	return nil
}

// Execute runs the root command and exits the process with a non-zero
// status on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "path to config file")
	pf.StringVar(&vaultPathFlag, "vault", "", "path to the vault file")
	pf.BoolVar(&debugFlag, "debug", false, "enable debug logging")
	pf.BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	pf.BoolVar(&passphraseFlag, "passphrase", false, "derive the master key from a passphrase instead of the keyring")
	pf.BoolVarP(&quietFlag, "quiet", "q", false, "suppress informational output")
}
