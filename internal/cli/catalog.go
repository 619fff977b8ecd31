package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hmorganics/dairybill/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the product catalog",
	Long:  `List every product with its default unit, HSN code, and GST rate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-22s %-10s %-8s %-8s\n", "Product", "Unit", "HSN", "GST")
		fmt.Println("--------------------------------------------------")

		for _, p := range catalog.Products {
			fmt.Printf("%-22s %-10s %-8s %-8s\n", p.Name, p.Unit, p.HSNCode, p.GSTRate)
		}

		fmt.Printf("\nTotal: %d product(s)\n", len(catalog.Products))
		return nil
	},
}
