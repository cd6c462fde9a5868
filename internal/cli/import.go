package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"otpvault/internal/vault"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import entries from an exported JSON file",
	Long: `Merges the entries of FILE into the vault. Aliases already present
are conflicts, resolved by --on-conflict: "fail" rejects the whole import,
"skip" keeps the existing entries, "overwrite" replaces them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		policyName, err := cmd.Flags().GetString("on-conflict")
		if err != nil {
			return err
		}
		policy, err := vault.ParseConflictPolicy(policyName)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading import file: %w", err)
		}

		s, key, err := openVault()
		if err != nil {
			return err
		}

		if policy == vault.ConflictFail {
			conflicts, err := s.Conflicts(data)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return fmt.Errorf("aliases already in the vault: %s (rename them with \"otpvault mv\" or pick another --on-conflict policy)",
					strings.Join(conflicts, ", "))
			}
		}

		report, err := s.Import(data, policy)
		if err != nil {
			return err
		}
		if err := saveVault(s, key); err != nil {
			return err
		}

		if !quietFlag {
			for _, line := range report {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", line.Alias, line.Action)
			}
		}
		return nil
	},
}

func init() {
	importCmd.Flags().String("on-conflict", string(vault.ConflictFail), "conflict policy: skip, overwrite or fail")
	rootCmd.AddCommand(importCmd)
}
