package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"otpvault/internal/vault"
)

const lowRemainingThreshold = 10

var (
	codeStyle = color.New(color.FgGreen, color.Bold)
	lowStyle  = color.New(color.FgRed, color.Bold)
	okStyle   = color.New(color.FgCyan)
)

// printCode renders a generated code. For time-based entries the seconds
// left in the current window are shown next to the code, switching to red
// when the window is about to close. In codeOnly mode just the digits are
// printed, which makes the output easy to pipe.
func printCode(w io.Writer, alias string, c vault.Code, codeOnly bool) {
	if codeOnly {
		fmt.Fprintln(w, c.Code)
		return
	}
	switch c.Kind {
	case vault.KindTOTP:
		style := okStyle
		if c.Remaining <= lowRemainingThreshold {
			style = lowStyle
		}
		fmt.Fprintf(w, "%s: %s  %s\n", alias, codeStyle.Sprint(c.Code), style.Sprintf("(%ds left)", c.Remaining))
	default:
		fmt.Fprintf(w, "%s: %s  (counter %d)\n", alias, codeStyle.Sprint(c.Code), c.Counter)
	}
}
