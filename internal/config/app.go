package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/calcbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"CALC_RUNTIME_PATH"`

	// Transport Flags
	EnableTelegram bool `env:"CALC_ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"CALC_ENABLE_CLI" envDefault:"true"`

	// SendRetries bounds retries per outgoing Telegram message
	SendRetries int `env:"CALC_SEND_RETRIES" envDefault:"3"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if c.RuntimePath == "" {
		c.RuntimePath = GetRuntimePath()
	}
	if c.SendRetries < 0 {
		c.SendRetries = 0
	}
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}

func (c AppConfig) IsCLISelected() bool {
	return c.EnableCLI
}
