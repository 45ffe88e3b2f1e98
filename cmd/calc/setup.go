package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/calcbot/internal/config"
	"github.com/sandevgo/calcbot/internal/core"
	"github.com/sandevgo/calcbot/internal/service/command"
	"github.com/sandevgo/calcbot/internal/transport/cli"
	"github.com/sandevgo/calcbot/internal/transport/telegram"
	"github.com/sandevgo/calcbot/pkg/log"
	"github.com/sandevgo/calcbot/pkg/srv"
)

var errNoTransport = errors.New("no transport enabled: set CALC_ENABLE_CLI or CALC_ENABLE_TELEGRAM")

// NewServices wires the turn handler into every enabled transport.
// terminate is called when a transport receives quit.
func NewServices(ctx context.Context, terminate func()) ([]srv.Service, error) {
	logger := log.FromCtx(ctx)

	if err := initEnv(ctx, config.GetEnvPath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	appCfg := config.NewAppConfig(ctx)
	handler := command.NewHandler(command.NewInterpreter())

	services, err := initTransports(ctx, appCfg, handler, terminate)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize transports: %w", err)
	}
	if len(services) == 0 {
		return nil, errNoTransport
	}
	return services, nil
}

func initTransports(ctx context.Context, cfg *config.AppConfig, handler core.TurnHandler, terminate func()) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, handler, cfg.SendRetries, terminate)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	if cfg.IsCLISelected() {
		rl, err := cli.NewReadLine(handler, cfg, terminate)
		if err != nil {
			return nil, err
		}
		services = append(services, rl)
	}

	return services, nil
}

func initEnv(ctx context.Context, envFile string) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
