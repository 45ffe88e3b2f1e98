package telegram

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sandevgo/calcbot/pkg/log"
	"github.com/sandevgo/calcbot/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

type messageSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type sender struct {
	api     messageSender
	retrier *retry.Retrier
}

func newSender(api messageSender, cfg *retry.Config) *sender {
	return &sender{
		api:     api,
		retrier: retry.NewRetrier(cfg),
	}
}

func sendRetryConfig(retries int) *retry.Config {
	cfg := retry.NewDefaultConfig()
	cfg.MaxRetries = retries
	cfg.Retryable = isRetryable
	return cfg
}

// sendText sends plain text, split into chunks when it exceeds Telegram's limit.
func (s *sender) sendText(ctx context.Context, to tele.Recipient, text string) error {
	logger := log.FromCtx(ctx)

	for i, chunk := range splitText(text, maxTelegramMsgLen) {
		err := s.retrier.Do(ctx, func() error {
			_, err := s.api.Send(to, chunk)
			return err
		})
		if err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// isRetryable rejects client errors other than flood control.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *tele.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests {
			return true
		}
		return apiErr.Code < 400 || apiErr.Code >= 500
	}
	return true
}

// splitText splits text into chunks of at most maxLen bytes.
// It prefers newline boundaries in the last two thirds of a chunk.
func splitText(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimLeft(text[cut:], "\n")
	}
	return chunks
}
