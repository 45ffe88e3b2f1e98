package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/calcbot/internal/config"
	"github.com/sandevgo/calcbot/internal/core"
	"github.com/sandevgo/calcbot/internal/service/command"
	"github.com/sandevgo/calcbot/pkg/log"
)

type lineReader interface {
	Readline() (string, error)
}

type ReadLine struct {
	handler   core.TurnHandler
	rl        *readline.Instance
	terminate func()
}

// NewReadLine calls terminate when the loop ends, whether by quit, EOF or Ctrl+C.
func NewReadLine(handler core.TurnHandler, cfg *config.AppConfig, terminate func()) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     cfg.GetHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		handler:   handler,
		rl:        rl,
		terminate: terminate,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	defer r.terminate()

	log.FromCtx(ctx).Info().Msg("ReadLine chat started. Type 'help' for commands, 'quit' to leave.")
	return r.loop(ctx, r.rl, r.rl.Stdout())
}

func (r *ReadLine) loop(ctx context.Context, in lineReader, out io.Writer) error {
	logger := log.FromCtx(ctx)

	send := func(_ context.Context, text string) error {
		_, err := fmt.Fprintln(out, text)
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := in.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		terminate, err := r.handler.HandleTurn(ctx, core.NewMessage(line), send)
		switch {
		case errors.Is(err, command.ErrParse):
			logger.Warn().Err(err).Str("input", line).Msg("turn failed")
		case err != nil:
			logger.Error().Err(err).Msg("turn failed")
			fmt.Fprintf(out, "Error: %v\n", err)
		}

		if terminate {
			return nil
		}
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
