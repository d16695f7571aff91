package cmd

import (
	"errors"
	"fmt"

	"github.com/baw-market/baw-cli/internal/application"
	"github.com/baw-market/baw-cli/internal/domain"
	"github.com/baw-market/baw-cli/internal/navigation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLoginCmd(app *app) *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the marketplace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			decision := navigation.Decide(navigation.PathLogin, app.sessions.Session())
			if !decision.Allowed {
				printRedirect(cmd, navigation.PathLogin, decision.Redirect)
				return nil
			}

			err := app.auth.Login(cmd.Context(), domain.Credentials{
				Username: username,
				Password: password,
			})
			switch {
			case errors.Is(err, application.ErrStateNotSaved):
				// Authenticated in memory; only the mirror write failed.
				app.logger.Warn("persist session failed", zap.Error(err))
			case err != nil:
				return fmt.Errorf("%s", app.sessions.LastError())
			}

			session := app.sessions.Session()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s [%s]\n", session.User.Username, session.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
