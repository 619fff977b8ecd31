package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hmorganics/dairybill/internal/invoicefile"
	"github.com/hmorganics/dairybill/internal/service"
)

var showCmd = &cobra.Command{
	Use:   "show <file.yaml>",
	Short: "Show the invoice described by a YAML file",
	Long: `Load an invoice description and print its chat rendering along with
the computed totals. Nothing is written or shared.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := sessionFromFile(args[0])
		if err != nil {
			return err
		}

		msg, err := session.ChatMessage()
		if err != nil {
			return fmt.Errorf("invoice is incomplete: %w", err)
		}

		fmt.Println(msg)
		return nil
	},
}

// sessionFromFile builds a fresh session from the configured company
// details and replays the invoice description onto it.
func sessionFromFile(path string) (service.InvoiceSession, error) {
	f, err := invoicefile.Load(path)
	if err != nil {
		return nil, err
	}

	session := appInstance.Session
	if err := f.Apply(session); err != nil {
		return nil, err
	}
	return session, nil
}
