package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"otpvault/internal/filex"
)

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Export all entries as plaintext JSON",
	Long: `Writes every entry, secrets included, as a JSON array to FILE or to
stdout. The output is NOT encrypted; treat it like the secrets it holds.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openVault()
		if err != nil {
			return err
		}
		data, err := s.Export()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := writeExportFile(args[0], data); err != nil {
			return err
		}
		if !quietFlag {
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s.\n", s.Len(), args[0])
		}
		return nil
	},
}

// writeExportFile writes plaintext export data with owner-only permissions.
func writeExportFile(path string, data []byte) error {
	return filex.WriteAtomic(path, data, 0o600)
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
