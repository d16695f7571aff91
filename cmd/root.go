package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "baw",
		Short:         "BAW marketplace client: browse, carry a cart, check out",
		Long:          "baw is the terminal client for the BAW marketplace. It keeps your session and cart locally, talks to the remote marketplace API, and guards which views are reachable for the current session.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newStatusCmd(app),
		newProductsCmd(app),
		newCartCmd(app),
		newCheckoutCmd(app),
		newOpenCmd(app),
	)

	return rootCmd
}
