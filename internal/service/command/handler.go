package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandevgo/calcbot/internal/core"
	"github.com/sandevgo/calcbot/pkg/log"
)

// Handler runs one turn: interpret the activity, then deliver the replies in order.
type Handler struct {
	interpreter *Interpreter
	formatter   *ResponseFormatter
}

func NewHandler(interpreter *Interpreter) *Handler {
	return &Handler{
		interpreter: interpreter,
		formatter:   NewResponseFormatter(),
	}
}

// HandleTurn reports whether the host should terminate. It only does so
// after the final reply was sent successfully.
func (h *Handler) HandleTurn(ctx context.Context, activity core.Activity, send core.Sender) (bool, error) {
	logger := log.FromCtx(ctx)

	if !activity.IsMessage() {
		logger.Debug().Str("type", string(activity.Type)).Msg("non-message activity")
		if err := send(ctx, h.formatter.Event(activity.Type)); err != nil {
			return false, fmt.Errorf("failed to send reply: %w", err)
		}
		return false, nil
	}

	outcome, turnErr := h.interpreter.Interpret(activity.Text)
	if cmd, ok := Parse(activity.Text); ok {
		logger.Debug().
			Str("command", cmd.Name).
			Stringer("kind", cmd.Kind).
			Int("replies", len(outcome.Replies)).
			Msg("command interpreted")
	}

	for _, text := range outcome.Replies {
		if err := send(ctx, text); err != nil {
			return false, errors.Join(fmt.Errorf("failed to send reply: %w", err), turnErr)
		}
	}

	if turnErr != nil {
		return false, turnErr
	}
	return outcome.Terminate, nil
}
