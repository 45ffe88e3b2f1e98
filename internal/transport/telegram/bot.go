package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/calcbot/internal/config"
	"github.com/sandevgo/calcbot/internal/core"
	"github.com/sandevgo/calcbot/internal/service/command"
	"github.com/sandevgo/calcbot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot       *tele.Bot
	cfg       *config.TelegramConfig
	handler   core.TurnHandler
	sender    *sender
	terminate func()
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	handler core.TurnHandler,
	retries int,
	terminate func(),
) (*Bot, error) {
	logger := log.FromCtx(ctx)

	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			ev := logger.Error()
			if errors.Is(err, command.ErrParse) {
				ev = logger.Warn()
			}
			if c != nil && c.Chat() != nil {
				ev = ev.Int64("chat", c.Chat().ID)
			}
			ev.Err(err).Msg("telegram turn failed")
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		cfg:       cfg,
		handler:   handler,
		sender:    newSender(b, sendRetryConfig(retries)),
		terminate: terminate,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: only allow the owner when one is configured
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			var senderID int64
			if c.Sender() != nil {
				senderID = c.Sender().ID
			}
			if !cfg.Allows(senderID) {
				return nil
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.on(func(c tele.Context) core.Activity {
		return core.NewMessage(c.Text())
	}))
	b.Handle(tele.OnMedia, bot.on(func(c tele.Context) core.Activity {
		return core.NewMessage(c.Message().Caption)
	}))
	b.Handle(tele.OnUserJoined, bot.on(eventOf(core.ActivityConversationUpdate)))
	b.Handle(tele.OnUserLeft, bot.on(eventOf(core.ActivityConversationUpdate)))
	b.Handle(tele.OnEdited, bot.on(eventOf(core.ActivityMessageUpdate)))

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("bot", b.bot.Me.Username).Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func eventOf(t core.ActivityType) func(tele.Context) core.Activity {
	return func(tele.Context) core.Activity {
		return core.Activity{Type: t}
	}
}

func (b *Bot) on(activity func(tele.Context) core.Activity) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := c.Get(baseContextKey).(context.Context)
		to := c.Chat()

		send := func(ctx context.Context, text string) error {
			return b.sender.sendText(ctx, to, text)
		}

		terminate, err := b.handler.HandleTurn(ctx, activity(c), send)
		if err != nil {
			return err
		}

		if terminate {
			log.FromCtx(ctx).Info().Int64("chat", to.ID).Msg("quit requested over telegram")
			b.terminate()
		}
		return nil
	}
}
