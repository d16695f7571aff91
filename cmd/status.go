package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/baw-market/baw-cli/internal/adapters/render/storefront"
	"github.com/baw-market/baw-cli/internal/domain"
	"github.com/spf13/cobra"
)

func username(session domain.Session) string {
	if session.User == nil {
		return ""
	}

	return session.User.Username
}

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"whoami"},
		Short:   "Show the current session",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := app.sessions.Session()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Authenticated bool
					Username      string
					Role          string
					LastError     string `json:",omitempty"`
				}{
					Authenticated: session.Authenticated(),
					Username:      username(session),
					Role:          string(session.Role()),
					LastError:     app.sessions.LastError(),
				})
			}

			rendered, err := storefront.RenderSession(session, app.sessions.LastError())
			if err != nil {
				return fmt.Errorf("render session: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
