package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/calcbot/pkg/log"
)

type TelegramConfig struct {
	Token string `env:"CALC_TELEGRAM_TOKEN,required,notEmpty"`
	// OwnerID restricts the bot to one user; 0 accepts everyone
	OwnerID int64 `env:"CALC_TELEGRAM_OWNER_ID" envDefault:"0"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c, err := ParseTelegramConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}

func ParseTelegramConfig() (*TelegramConfig, error) {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c TelegramConfig) Allows(senderID int64) bool {
	return c.OwnerID == 0 || c.OwnerID == senderID
}
