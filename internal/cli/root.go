package cli

import (
	"github.com/spf13/cobra"

	"github.com/hmorganics/dairybill/internal/app"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "dairybill",
	Short: "Build and share dairy invoices",
	Long: `Dairybill builds GST invoices for dairy products and shares them over
WhatsApp, email, or a printable page.

By default, running dairybill without arguments launches the interactive TUI.
Use subcommands for CLI operations.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: launch TUI
		launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
}
