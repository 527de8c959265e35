package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmateos23/tennis-tour-system/metrics"
	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/dmateos23/tennis-tour-system/scoring"
	"github.com/slack-go/slack"
)

const postTimeout = 10 * time.Second

// slackAPI contains the methods from slack.Client that we use, so tests
// can intercept API calls.
type slackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ Notifier = (*SlackNotifier)(nil)

// SlackNotifier posts match results to a Slack channel.
type SlackNotifier struct {
	api       slackAPI
	channelID string
	metrics   metrics.Metrics
	logger    *slog.Logger
}

func NewSlackNotifier(token, channelID string, m metrics.Metrics, logger *slog.Logger) *SlackNotifier {
	return &SlackNotifier{
		api:       slack.New(token),
		channelID: channelID,
		metrics:   m,
		logger:    logger,
	}
}

// NewSlackNotifierWithAPI creates a notifier with a specific client,
// useful for tests.
func NewSlackNotifierWithAPI(api slackAPI, channelID string, m metrics.Metrics, logger *slog.Logger) *SlackNotifier {
	return &SlackNotifier{
		api:       api,
		channelID: channelID,
		metrics:   m,
		logger:    logger,
	}
}

func (n *SlackNotifier) AnnounceResult(ctx context.Context, match models.Match, tournament models.Tournament, player1, player2 models.Player) error {
	winner := player1.Name
	loser := player2.Name
	if match.WinnerID == player2.ID {
		winner, loser = loser, winner
	}

	headline := fmt.Sprintf(":tennis: *%s* - %s", tournament.Name, tournament.Surface)
	result := fmt.Sprintf("*%s* d. %s  %s", winner, loser, scoring.FormatSets(match.Sets))
	if match.DurationMinutes != nil {
		result += fmt.Sprintf("  (%s)", scoring.FormatDuration(*match.DurationMinutes))
	}

	blocks := []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, headline, false, false), nil, nil),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, result, false, false), nil, nil),
	}

	postCtx, cancel := context.WithTimeout(ctx, postTimeout)
	defer cancel()

	_, _, err := n.api.PostMessageContext(
		postCtx,
		n.channelID,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		n.metrics.IncNotificationsFailed()
		n.logger.Error("failed to post result to slack",
			slog.String("match_id", match.ID),
			slog.Any("error", err))
		return fmt.Errorf("failed to post message: %w", err)
	}

	n.metrics.IncNotificationsSent()
	return nil
}
