package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/calcbot/internal/core"
	"github.com/sandevgo/calcbot/internal/service/command"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:          "ask <command> [operands...]",
	Short:        "Run a single turn and print the reply",
	Example:      "  calc ask add 2 3\n  calc ask help",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		out := cmd.OutOrStdout()
		send := func(_ context.Context, text string) error {
			_, err := fmt.Fprintln(out, text)
			return err
		}

		handler := command.NewHandler(command.NewInterpreter())
		_, err := handler.HandleTurn(ctx, core.NewMessage(strings.Join(args, " ")), send)
		return err
	},
}

func init() {
	// operands such as -7 must not be read as flags
	askCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(askCmd)
}
