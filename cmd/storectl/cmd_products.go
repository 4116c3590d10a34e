package main

import (
	"github.com/spf13/cobra"

	productsvc "storefront/internal/service/product"
	"storefront/internal/storefront"
)

// productsCmd prints the normalized catalog.
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List normalized products from the Storefront API",
	Args:  cobra.NoArgs,
	RunE:  runProducts,
}

func runProducts(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	client, err := storefront.New(cfg.Storefront, storefront.WithTimeout(cfg.StorefrontTimeout))
	if err != nil {
		return err
	}
	products, err := productsvc.New(client, logger).List(cmd.Context())
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), outputFormat, products)
}
