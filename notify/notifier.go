package notify

import (
	"context"

	"github.com/dmateos23/tennis-tour-system/models"
)

// Notifier announces tour events to an external channel. It decouples
// the match service from the concrete provider (Slack today).
type Notifier interface {
	AnnounceResult(ctx context.Context, match models.Match, tournament models.Tournament, player1, player2 models.Player) error
}

// Noop is used when no notification channel is configured.
type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) AnnounceResult(ctx context.Context, match models.Match, tournament models.Tournament, player1, player2 models.Player) error {
	return nil
}
