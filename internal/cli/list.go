package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List entry aliases",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, _, err := openVault()
		if err != nil {
			return err
		}
		if s.Len() == 0 && !quietFlag {
			fmt.Fprintln(cmd.ErrOrStderr(), "The vault is empty.")
			return nil
		}
		for _, e := range s.List() {
			fmt.Fprintln(cmd.OutOrStdout(), e.Alias)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
