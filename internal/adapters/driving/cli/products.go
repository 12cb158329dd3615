package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pablo751/dientes/internal/core/domain"
)

var productsJSON bool

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List catalog products",
	Long:  `Lists the products available in the loaded catalog, in catalog order.`,
	RunE:  runProducts,
}

func init() {
	productsCmd.Flags().BoolVar(&productsJSON, "json", false, "output products as JSON")
	rootCmd.AddCommand(productsCmd)
}

func runProducts(cmd *cobra.Command, _ []string) error {
	if err := ensureAssistant(cmd.Context()); err != nil {
		return err
	}
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	products, err := catalogService.Products(cmd.Context())
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	if productsJSON {
		return outputProductsJSON(cmd, products)
	}

	if len(products) == 0 {
		cmd.Println("The catalog is empty.")
		return nil
	}

	cmd.Printf("Products (%d):\n\n", len(products))
	for i, p := range products {
		cmd.Printf("  [%d] %s\n", i+1, p.Name)
		cmd.Printf("      %s\n", p.Presentation)
	}
	return nil
}

func outputProductsJSON(cmd *cobra.Command, products []domain.Product) error {
	type record struct {
		Name              string `json:"name"`
		Description       string `json:"description"`
		UsageInstructions string `json:"usage_instructions"`
		Advantages        string `json:"advantages"`
		Presentation      string `json:"presentation"`
	}

	out := make([]record, len(products))
	for i, p := range products {
		out[i] = record{
			Name:              p.Name,
			Description:       p.Description,
			UsageInstructions: p.UsageInstructions,
			Advantages:        p.Advantages,
			Presentation:      p.Presentation,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal products: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
