package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/baw-market/baw-cli/internal/application"
	"github.com/baw-market/baw-cli/internal/domain"
	"github.com/baw-market/baw-cli/internal/navigation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Submit the cart as an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := guardView(app, navigation.PathCheckout); err != nil {
				return err
			}

			var order domain.Order
			submit := func(ctx context.Context) error {
				var err error
				order, err = app.checkout.Checkout(ctx)
				return err
			}

			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Submitting order...", submit)
			switch {
			case errors.Is(err, domain.ErrEmptyCart):
				return errors.New("nothing to check out: cart is empty")
			case errors.Is(err, application.ErrStateNotSaved):
				// The order went through; only the cart slot cleanup failed.
				app.logger.Warn("clear persisted cart failed", zap.Error(err))
			case err != nil:
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Order #%d placed (%s), total $%.2f\n", order.ID, order.Status, order.Total)
			return nil
		},
	}
}
