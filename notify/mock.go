package notify

import (
	"context"
	"sync"

	"github.com/dmateos23/tennis-tour-system/models"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
type Mock struct {
	mu        sync.Mutex
	announced []models.Match
	Err       error
}

func NewMock() *Mock { return &Mock{} }

func (m *Mock) AnnounceResult(ctx context.Context, match models.Match, tournament models.Tournament, player1, player2 models.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.announced = append(m.announced, match)
	return m.Err
}

// Announced returns the matches passed to AnnounceResult so far.
func (m *Mock) Announced() []models.Match {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Match, len(m.announced))
	copy(out, m.announced)
	return out
}
