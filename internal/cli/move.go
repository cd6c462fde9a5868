package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:     "mv OLD NEW",
	Aliases: []string{"rename"},
	Short:   "Rename an entry",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, key, err := openVault()
		if err != nil {
			return err
		}
		if err := s.Rename(args[0], args[1]); err != nil {
			return err
		}
		if err := saveVault(s, key); err != nil {
			return err
		}
		if !quietFlag {
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s.\n", args[0], args[1])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
