package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"otpvault/internal/vault"
)

var showCmd = &cobra.Command{
	Use:   "show ALIAS",
	Short: "Generate a code for an entry",
	Long: `Generates the current code for ALIAS. For a counter-based entry the
advanced counter is persisted before the code is printed, so a crash
cannot hand out the same code twice. With --wait-for-next N, a time-based
code with fewer than N seconds left is skipped and the next window's code
is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alias := args[0]
		waitFor, err := cmd.Flags().GetUint("wait-for-next")
		if err != nil {
			return err
		}
		codeOnly, err := cmd.Flags().GetBool("code-only")
		if err != nil {
			return err
		}

		s, key, err := openVault()
		if err != nil {
			return err
		}

		code, err := s.Generate(alias, time.Now())
		if err != nil {
			return err
		}

		if code.Kind == vault.KindHOTP {
			if err := saveVault(s, key); err != nil {
				return err
			}
		} else if waitFor > 0 && code.Remaining < waitFor {
			log.Debug(cmd.Context(), "waiting out the current window", "alias", alias, "remaining", code.Remaining)
			select {
			case <-time.After(time.Duration(code.Remaining) * time.Second):
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
			if code, err = s.Generate(alias, time.Now()); err != nil {
				return err
			}
		}

		printCode(cmd.OutOrStdout(), alias, code, codeOnly)
		return nil
	},
}

var peekCmd = &cobra.Command{
	Use:   "peek ALIAS",
	Short: "Show an entry's settings without generating a code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openVault()
		if err != nil {
			return err
		}
		e, err := s.Get(args[0])
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Alias:     %s\n", e.Alias)
		fmt.Fprintf(w, "Kind:      %s\n", e.Kind())
		fmt.Fprintf(w, "Algorithm: %s\n", e.Algorithm)
		fmt.Fprintf(w, "Digits:    %d\n", e.Digits)
		if e.Issuer != "" {
			fmt.Fprintf(w, "Issuer:    %s\n", e.Issuer)
		}
		if e.Label != "" {
			fmt.Fprintf(w, "Label:     %s\n", e.Label)
		}
		switch p := e.Params.(type) {
		case vault.HOTPParams:
			fmt.Fprintf(w, "Counter:   %d\n", p.Counter)
		case vault.TOTPParams:
			fmt.Fprintf(w, "Period:    %ds\n", p.Period)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Uint("wait-for-next", 0, "skip codes with fewer than this many seconds left")
	showCmd.Flags().Bool("code-only", false, "print only the code, no decoration")
	rootCmd.AddCommand(showCmd, peekCmd)
}
