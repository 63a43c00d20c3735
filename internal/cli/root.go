package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"offer_landing/internal/application"
	"offer_landing/internal/config"
)

//nolint:gochecknoglobals
var (
	logLevel  string
	logFormat string
	cfg       config.Config
	appHandle *application.Application
)

//nolint:gochecknoglobals
var rootCmd = &cobra.Command{
	Use:           "offer-landing",
	Short:         "Deal lookup backend of the offer landing page",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if appHandle != nil {
			return nil
		}

		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("config.Load: %w", err)
		}

		if logLevel != "" {
			loaded.Log.Level = logLevel
		}

		if logFormat != "" {
			loaded.Log.Format = logFormat
		}

		cfg = loaded
		appHandle = application.New(cfg)

		cmd.SetContext(withLogger(cmd.Context(), cfg.Log, cmd.ErrOrStderr()))

		return nil
	},
}

// Execute runs the root command until ctx is done.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx) //nolint:wrapcheck
}

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Override LOG_FORMAT (text or json)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(versionCmd)
}

func getApp() *application.Application {
	if appHandle == nil {
		panic("application not initialized; PersistentPreRunE not executed")
	}

	return appHandle
}
