package cmd

import (
	"errors"
	"fmt"

	"github.com/baw-market/baw-cli/internal/adapters/render/storefront"
	"github.com/baw-market/baw-cli/internal/navigation"
	"github.com/spf13/cobra"
)

var errLoginRequired = errors.New("login required")

// guardView applies the route policy before a command renders its view,
// the same way the guard runs on every navigation.
func guardView(app *app, path string) error {
	decision := navigation.Decide(path, app.sessions.Session())
	if decision.Allowed {
		return nil
	}

	if decision.Redirect == navigation.PathLogin {
		return fmt.Errorf("%s redirects to %s: %w", path, decision.Redirect, errLoginRequired)
	}

	return fmt.Errorf("%s redirects to %s", path, decision.Redirect)
}

func printRedirect(cmd *cobra.Command, from, to string) {
	rendered, err := storefront.RenderRedirect(from, to)
	if err != nil {
		rendered = fmt.Sprintf("%s -> redirect %s", from, to)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), rendered)
}
