package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/baw-market/baw-cli/internal/adapters/render/storefront"
	"github.com/baw-market/baw-cli/internal/domain"
	"github.com/baw-market/baw-cli/internal/navigation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCartCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and edit your cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := guardView(app, navigation.PathCart); err != nil {
				return err
			}

			return renderCart(cmd, app)
		},
	}

	cmd.AddCommand(
		newCartAddCmd(app),
		newCartRemoveCmd(app),
		newCartUpdateCmd(app),
		newCartClearCmd(app),
	)

	return cmd
}

func newCartAddCmd(app *app) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guardView(app, navigation.PathCart); err != nil {
				return err
			}

			productID, err := parseProductID(args[0])
			if err != nil {
				return err
			}

			var product domain.Product
			fetch := func(ctx context.Context) error {
				var err error
				product, err = app.market.FetchProduct(ctx, productID)
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching product...", fetch); err != nil {
				return fmt.Errorf("fetch product %d: %w", productID, err)
			}

			if err := app.cart.Add(cmd.Context(), product.ID, product.Name, product.Price, quantity); err != nil {
				app.logger.Warn("persist cart failed", zap.Error(err))
			}

			return renderCart(cmd, app)
		},
	}

	cmd.Flags().IntVar(&quantity, "quantity", 1, "Quantity to add")

	return cmd
}

func newCartRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guardView(app, navigation.PathCart); err != nil {
				return err
			}

			productID, err := parseProductID(args[0])
			if err != nil {
				return err
			}

			if err := app.cart.Remove(cmd.Context(), productID); err != nil {
				app.logger.Warn("persist cart failed", zap.Error(err))
			}

			return renderCart(cmd, app)
		},
	}
}

func newCartUpdateCmd(app *app) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Set a cart line's quantity (0 removes it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guardView(app, navigation.PathCart); err != nil {
				return err
			}

			productID, err := parseProductID(args[0])
			if err != nil {
				return err
			}

			if err := app.cart.UpdateQuantity(cmd.Context(), productID, quantity); err != nil {
				app.logger.Warn("persist cart failed", zap.Error(err))
			}

			return renderCart(cmd, app)
		},
	}

	cmd.Flags().IntVar(&quantity, "quantity", 1, "New quantity")
	_ = cmd.MarkFlagRequired("quantity")

	return cmd
}

func newCartClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := guardView(app, navigation.PathCart); err != nil {
				return err
			}

			if err := app.cart.Clear(cmd.Context()); err != nil {
				app.logger.Warn("clear persisted cart failed", zap.Error(err))
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			return err
		},
	}
}

func renderCart(cmd *cobra.Command, app *app) error {
	rendered, err := storefront.RenderCart(app.cart.Items(), app.cart.Total())
	if err != nil {
		return fmt.Errorf("render cart: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func parseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", raw)
	}

	return id, nil
}
