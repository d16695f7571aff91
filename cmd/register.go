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

func newRegisterCmd(app *app) *cobra.Command {
	var reg struct {
		username        string
		email           string
		password        string
		passwordConfirm string
		role            string
		country         string
		phone           string
	}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a marketplace account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			decision := navigation.Decide(navigation.PathRegister, app.sessions.Session())
			if !decision.Allowed {
				printRedirect(cmd, navigation.PathRegister, decision.Redirect)
				return nil
			}

			role := domain.Role(reg.role)
			if !role.Valid() {
				return fmt.Errorf("unknown role %q (want buyer or seller)", reg.role)
			}

			err := app.auth.Register(cmd.Context(), domain.Registration{
				Username:        reg.username,
				Email:           reg.email,
				Password:        reg.password,
				PasswordConfirm: reg.passwordConfirm,
				Role:            role,
				Country:         reg.country,
				Phone:           reg.phone,
			})
			switch {
			case errors.Is(err, application.ErrStateNotSaved):
				app.logger.Warn("persist session failed", zap.Error(err))
			case err != nil:
				return fmt.Errorf("%s", app.sessions.LastError())
			}

			session := app.sessions.Session()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Welcome to BAW, %s [%s]\n", session.User.Username, session.User.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.username, "username", "", "Account username")
	cmd.Flags().StringVar(&reg.email, "email", "", "Account email")
	cmd.Flags().StringVar(&reg.password, "password", "", "Account password")
	cmd.Flags().StringVar(&reg.passwordConfirm, "password-confirm", "", "Password confirmation")
	cmd.Flags().StringVar(&reg.role, "role", "buyer", "Account role: buyer or seller")
	cmd.Flags().StringVar(&reg.country, "country", "", "Country (optional)")
	cmd.Flags().StringVar(&reg.phone, "phone", "", "Phone number (optional)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("password-confirm")

	return cmd
}
