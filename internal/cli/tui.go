package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hmorganics/dairybill/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal UI",
	Long:  `Launch the interactive terminal user interface for dairybill.`,
	Run:   launchTUI,
}

func launchTUI(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "dairybill needs an interactive terminal for the TUI")
		fmt.Fprintln(os.Stderr, "use 'dairybill export <file.yaml>' for scripted invoicing")
		os.Exit(1)
	}

	if err := tui.Run(appInstance); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}
