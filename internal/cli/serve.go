package cli

import (
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the lookup API with its probe and metrics servers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return getApp().Serve(cmd.Context()) //nolint:wrapcheck
	},
}
