package services

import (
	"context"
	"log/slog"

	"github.com/dmateos23/tennis-tour-system/metrics"
	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/dmateos23/tennis-tour-system/notify"
	"github.com/dmateos23/tennis-tour-system/repositories"
	"github.com/dmateos23/tennis-tour-system/scoreboard"
	"github.com/dmateos23/tennis-tour-system/scoring"
	"github.com/google/uuid"
)

type CreateMatchInput struct {
	TournamentID    string             `json:"tournament_id"`
	Player1ID       string             `json:"player1_id"`
	Player2ID       string             `json:"player2_id"`
	WinnerID        string             `json:"winner_id"`
	Sets            []models.SetResult `json:"sets"`
	DurationMinutes *int               `json:"duration_minutes"`
}

// UpdateMatchInput повторяет CreateMatchInput: результат матча
// переписывается целиком.
type UpdateMatchInput = CreateMatchInput

type MatchService interface {
	CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id string) (*models.Match, error)
	ListMatches(ctx context.Context, filter repositories.ListMatchesFilter) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id string, input UpdateMatchInput) (*models.Match, error)
	DeleteMatch(ctx context.Context, id string) error
}

type matchService struct {
	matchRepo      repositories.MatchRepository
	tournamentRepo repositories.TournamentRepository
	playerRepo     repositories.PlayerRepository
	hub            *scoreboard.Hub
	notifier       notify.Notifier
	metrics        metrics.Metrics
	logger         *slog.Logger
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	tournamentRepo repositories.TournamentRepository,
	playerRepo repositories.PlayerRepository,
	hub *scoreboard.Hub,
	notifier notify.Notifier,
	m metrics.Metrics,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		matchRepo:      matchRepo,
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		hub:            hub,
		notifier:       notifier,
		metrics:        m,
		logger:         logger,
	}
}

// prepareMatch проверяет ссылки и счёт, затем согласует победителя.
// Политика: если счёт по сетам решает матч, выведенный победитель
// перекрывает присланный winner_id; незавершённый счёт доверяет полю.
func (s *matchService) prepareMatch(ctx context.Context, match *models.Match) (*models.Tournament, *models.Player, *models.Player, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, match.TournamentID)
	if err != nil {
		return nil, nil, nil, mapRepositoryError(err)
	}

	player1, err := s.playerRepo.GetByID(ctx, match.Player1ID)
	if err != nil {
		return nil, nil, nil, mapRepositoryError(err)
	}
	player2, err := s.playerRepo.GetByID(ctx, match.Player2ID)
	if err != nil {
		return nil, nil, nil, mapRepositoryError(err)
	}

	if err := scoring.ValidateMatch(*match, *tournament); err != nil {
		return nil, nil, nil, err
	}

	derived := scoring.DeriveWinner(match.Sets, tournament.IsBestOfFive)
	if derived != scoring.SideUndecided {
		match.WinnerID = derived.PlayerID(match.Player1ID, match.Player2ID)
	}

	return tournament, player1, player2, nil
}

func (s *matchService) CreateMatch(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	match := &models.Match{
		ID:              uuid.NewString(),
		TournamentID:    input.TournamentID,
		Player1ID:       input.Player1ID,
		Player2ID:       input.Player2ID,
		WinnerID:        input.WinnerID,
		Sets:            input.Sets,
		DurationMinutes: input.DurationMinutes,
	}

	tournament, player1, player2, err := s.prepareMatch(ctx, match)
	if err != nil {
		return nil, err
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, mapRepositoryError(err)
	}
	s.metrics.IncMatchesRecorded()

	s.publishMatchEvent(scoreboard.EventMatchCreated, match)
	s.announceResult(ctx, *match, *tournament, *player1, *player2)
	return match, nil
}

func (s *matchService) GetMatchByID(ctx context.Context, id string) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return match, nil
}

func (s *matchService) ListMatches(ctx context.Context, filter repositories.ListMatchesFilter) ([]models.Match, error) {
	return s.matchRepo.List(ctx, filter)
}

func (s *matchService) UpdateMatch(ctx context.Context, id string, input UpdateMatchInput) (*models.Match, error) {
	existing, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	match := &models.Match{
		ID:              existing.ID,
		TournamentID:    input.TournamentID,
		Player1ID:       input.Player1ID,
		Player2ID:       input.Player2ID,
		WinnerID:        input.WinnerID,
		Sets:            input.Sets,
		DurationMinutes: input.DurationMinutes,
		CreatedAt:       existing.CreatedAt,
	}

	if _, _, _, err := s.prepareMatch(ctx, match); err != nil {
		return nil, err
	}

	if err := s.matchRepo.Update(ctx, match); err != nil {
		return nil, mapRepositoryError(err)
	}

	s.publishMatchEvent(scoreboard.EventMatchUpdated, match)
	return match, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id string) error {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.publishMatchEvent(scoreboard.EventMatchDeleted, match)
	return nil
}

// publishMatchEvent извещает табло о матче и об изменении рейтинга -
// любой результат способен переставить игроков в таблице.
func (s *matchService) publishMatchEvent(eventType string, match *models.Match) {
	room := scoreboard.TournamentRoom(match.TournamentID)
	s.hub.Publish(scoreboard.Event{Type: eventType, Payload: match, Room: room})
	s.hub.Publish(scoreboard.Event{Type: scoreboard.EventRankingChanged, Room: room})
}

func (s *matchService) announceResult(ctx context.Context, match models.Match, tournament models.Tournament, player1, player2 models.Player) {
	if err := s.notifier.AnnounceResult(ctx, match, tournament, player1, player2); err != nil {
		s.logger.Warn("failed to announce match result",
			slog.String("match_id", match.ID),
			slog.Any("error", err))
	}
}
