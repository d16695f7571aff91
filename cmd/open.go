package cmd

import (
	"fmt"

	"github.com/baw-market/baw-cli/internal/adapters/render/storefront"
	"github.com/baw-market/baw-cli/internal/domain"
	"github.com/baw-market/baw-cli/internal/navigation"
	"github.com/spf13/cobra"
)

var productFilterNone = domain.ProductFilter{}

// newOpenCmd navigates like a browser would: the guard decides whether the
// requested view is reachable for the current session, and a redirect is
// reported rather than followed into a render.
func newOpenCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Navigate to a view, subject to the route guard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			session := app.sessions.Session()

			decision := navigation.Decide(path, session)
			if !decision.Allowed {
				printRedirect(cmd, path, decision.Redirect)
				return nil
			}

			return renderView(cmd, app, path)
		},
	}
}

func renderView(cmd *cobra.Command, app *app, path string) error {
	switch path {
	case navigation.PathCart:
		return renderCart(cmd, app)
	case navigation.PathCheckout:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "Checkout: run `baw checkout` to submit your cart")
		return err
	case navigation.PathLogin:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "Login: run `baw login --username <name> --password <secret>`")
		return err
	case navigation.PathRegister:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "Register: run `baw register` with account flags")
		return err
	case navigation.PathSellerDashboard:
		rendered, err := storefront.RenderSession(app.sessions.Session(), app.sessions.LastError())
		if err != nil {
			return fmt.Errorf("render seller dashboard: %w", err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Seller dashboard\n%s\n", rendered)
		return err
	default:
		// Home and product detail both land on the catalog.
		return runProductsView(cmd, app)
	}
}

func runProductsView(cmd *cobra.Command, app *app) error {
	products, err := app.market.FetchProducts(cmd.Context(), productFilterNone)
	if err != nil {
		return fmt.Errorf("fetch products: %w", err)
	}

	rendered, err := storefront.RenderCatalog(products)
	if err != nil {
		return fmt.Errorf("render catalog: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
