package core

import "context"

// Sender delivers one reply text back to the conversation.
type Sender func(ctx context.Context, text string) error

type TurnHandler interface {
	HandleTurn(ctx context.Context, activity Activity, send Sender) (bool, error)
}
