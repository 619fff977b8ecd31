package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hmorganics/dairybill/internal/share"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.yaml>",
	Short: "Export an invoice in one of the share formats",
	Long: `Load an invoice description and export it.

Formats:
  print     write the printable HTML page to the output directory
  whatsapp  print the wa.me share link
  email     print the mailto share link`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		open, _ := cmd.Flags().GetBool("open")

		if outDir, _ := cmd.Flags().GetString("out"); outDir != "" {
			appInstance.Session.SetOutputDir(outDir)
		}

		session, err := sessionFromFile(args[0])
		if err != nil {
			return err
		}

		var target string
		switch format {
		case "print":
			path, err := session.ExportPrintFile()
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			fmt.Printf("Saved %s\n", path)
			target = path

		case "whatsapp":
			link, err := session.WhatsAppURL()
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			fmt.Println(link)
			target = link

		case "email":
			link, err := session.MailtoURL()
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			fmt.Println(link)
			target = link

		default:
			return fmt.Errorf("unknown format %q (want print, whatsapp, or email)", format)
		}

		if open {
			if err := share.Open(target); err != nil {
				return fmt.Errorf("failed to open: %w", err)
			}
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "print", "export format: print, whatsapp, email")
	exportCmd.Flags().String("out", "", "override the output directory for print exports")
	exportCmd.Flags().Bool("open", false, "hand the result to the system opener")
}
