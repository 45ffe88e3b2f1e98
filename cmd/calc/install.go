package main

import (
	"github.com/joho/godotenv"
	"github.com/sandevgo/calcbot/internal/config"
	"github.com/sandevgo/calcbot/internal/service/installer"
	"github.com/sandevgo/calcbot/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Write the CalcBot runtime configuration",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting installation process")

		envPath := config.GetEnvPath()
		state, err := installer.RunWizard(envPath)
		if err != nil {
			return err
		}

		if err := godotenv.Load(envPath); err != nil {
			logger.Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
		}

		logger.Info().Str("channel", state.Channel).Msgf("configuration written to: %s", envPath)
		logger.Info().Msg("Installation complete! You can now run 'calc start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
