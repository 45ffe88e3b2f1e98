package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/calcbot/pkg/log"
	"github.com/sandevgo/calcbot/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the CalcBot transports",
	Long:  `Starts every configured transport (CLI, Telegram) and runs until 'quit' or an interrupt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting calcbot")

		// quit cancels ctx through stop
		services, err := NewServices(ctx, stop)
		if err != nil {
			return err
		}

		srv.StartServices(ctx, services, stop)

		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("calcbot has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
