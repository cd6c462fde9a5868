package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "rm ALIAS",
	Aliases: []string{"remove"},
	Short:   "Remove an entry from the vault",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alias := args[0]
		yes, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return err
		}

		s, key, err := openVault()
		if err != nil {
			return err
		}
		if _, err := s.Get(alias); err != nil {
			return err
		}

		if !yes {
			reader := bufio.NewReader(cmd.InOrStdin())
			question := fmt.Sprintf("Remove %q? The secret cannot be recovered.", alias)
			ok, err := confirm(reader, question, os.Stderr)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
				return nil
			}
		}

		if err := s.Remove(alias); err != nil {
			return err
		}
		if err := saveVault(s, key); err != nil {
			return err
		}
		if !quietFlag {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", alias)
		}
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}
