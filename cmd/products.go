package cmd

import (
	"context"
	"fmt"

	"github.com/baw-market/baw-cli/internal/adapters/render/storefront"
	"github.com/baw-market/baw-cli/internal/domain"
	"github.com/baw-market/baw-cli/internal/navigation"
	"github.com/spf13/cobra"
)

func newProductsCmd(app *app) *cobra.Command {
	var search string
	var category string

	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"browse"},
		Short:   "Browse the product catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := guardView(app, navigation.PathHome); err != nil {
				return err
			}

			var products []domain.Product
			fetch := func(ctx context.Context) error {
				var err error
				products, err = app.market.FetchProducts(ctx, domain.ProductFilter{
					Query:    search,
					Category: category,
				})
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching products...", fetch); err != nil {
				return fmt.Errorf("fetch products: %w", err)
			}

			rendered, err := storefront.RenderCatalog(products)
			if err != nil {
				return fmt.Errorf("render catalog: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search query")
	cmd.Flags().StringVar(&category, "category", "", "Category filter")

	return cmd
}
