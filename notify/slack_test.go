package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dmateos23/tennis-tour-system/metrics"
	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlackAPI struct {
	channels []string
	err      error
}

func (f *fakeSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	f.channels = append(f.channels, channelID)
	return channelID, "ts", f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func announcedMatch() (models.Match, models.Tournament, models.Player, models.Player) {
	duration := 95
	match := models.Match{
		ID:        "m1",
		Player1ID: "p1",
		Player2ID: "p2",
		WinnerID:  "p2",
		Sets: []models.SetResult{
			{Player1Games: 4, Player2Games: 6},
			{Player1Games: 3, Player2Games: 6},
		},
		DurationMinutes: &duration,
	}
	tournament := models.Tournament{Name: "Masters de Puerto Claro", Surface: models.SurfaceHard}
	return match, tournament,
		models.Player{ID: "p1", Name: "Rafa Montoya"},
		models.Player{ID: "p2", Name: "Iván Quesada"}
}

func TestSlackNotifierAnnounceResult(t *testing.T) {
	api := &fakeSlackAPI{}
	m := metrics.NewMock()
	notifier := NewSlackNotifierWithAPI(api, "C123", m, testLogger())

	match, tournament, p1, p2 := announcedMatch()
	require.NoError(t, notifier.AnnounceResult(context.Background(), match, tournament, p1, p2))

	assert.Equal(t, []string{"C123"}, api.channels)
	assert.Equal(t, 1, m.NotificationsSent())
	assert.Zero(t, m.NotificationsFailed())
}

func TestSlackNotifierAPIError(t *testing.T) {
	api := &fakeSlackAPI{err: errors.New("channel_not_found")}
	m := metrics.NewMock()
	notifier := NewSlackNotifierWithAPI(api, "C123", m, testLogger())

	match, tournament, p1, p2 := announcedMatch()
	err := notifier.AnnounceResult(context.Background(), match, tournament, p1, p2)

	assert.Error(t, err)
	assert.Zero(t, m.NotificationsSent())
	assert.Equal(t, 1, m.NotificationsFailed())
}

func TestNoopNotifier(t *testing.T) {
	match, tournament, p1, p2 := announcedMatch()
	assert.NoError(t, NewNoop().AnnounceResult(context.Background(), match, tournament, p1, p2))
}
