package services

import (
	"context"

	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/dmateos23/tennis-tour-system/repositories"
	"github.com/dmateos23/tennis-tour-system/stats"
	"golang.org/x/sync/errgroup"
)

type StatsService interface {
	PlayerOverall(ctx context.Context, playerID string) (models.PlayerStats, error)
	PlayerBySurface(ctx context.Context, playerID string) (map[models.Surface]models.PlayerStats, error)
	PlayerByCategory(ctx context.Context, playerID string) (map[models.TournamentCategory]models.CategoryStats, error)
	Records(ctx context.Context) (models.MatchRecords, error)
	Ranking(ctx context.Context) ([]models.RankingEntry, error)
	DavisCup(ctx context.Context, playerID string) (models.DavisCupSummary, error)
}

type statsService struct {
	playerRepo     repositories.PlayerRepository
	tournamentRepo repositories.TournamentRepository
	matchRepo      repositories.MatchRepository
}

func NewStatsService(
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
) StatsService {
	return &statsService{
		playerRepo:     playerRepo,
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
	}
}

// tourSnapshot - неизменяемый срез данных тура, по которому считается
// вся статистика. Пересобирается с нуля на каждый запрос.
type tourSnapshot struct {
	players     []models.Player
	tournaments []models.Tournament
	matches     []models.Match
}

func (s tourSnapshot) tournamentIndex() map[string]models.Tournament {
	return tournamentsByID(s.tournaments)
}

func (s tourSnapshot) playerIndex() map[string]models.Player {
	return playersByID(s.players)
}

// loadSnapshot читает три коллекции параллельно.
func (s *statsService) loadSnapshot(ctx context.Context) (tourSnapshot, error) {
	var snapshot tourSnapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		players, err := s.playerRepo.List(gctx)
		if err != nil {
			return err
		}
		snapshot.players = players
		return nil
	})
	g.Go(func() error {
		tournaments, err := s.tournamentRepo.List(gctx, repositories.ListTournamentsFilter{})
		if err != nil {
			return err
		}
		snapshot.tournaments = tournaments
		return nil
	})
	g.Go(func() error {
		matches, err := s.matchRepo.List(gctx, repositories.ListMatchesFilter{})
		if err != nil {
			return err
		}
		snapshot.matches = matches
		return nil
	})

	if err := g.Wait(); err != nil {
		return tourSnapshot{}, err
	}
	return snapshot, nil
}

func (s *statsService) requirePlayer(ctx context.Context, playerID string) error {
	_, err := s.playerRepo.GetByID(ctx, playerID)
	return mapRepositoryError(err)
}

func (s *statsService) PlayerOverall(ctx context.Context, playerID string) (models.PlayerStats, error) {
	if err := s.requirePlayer(ctx, playerID); err != nil {
		return models.PlayerStats{}, err
	}

	matches, err := s.matchRepo.List(ctx, repositories.ListMatchesFilter{PlayerID: &playerID})
	if err != nil {
		return models.PlayerStats{}, err
	}
	return stats.Overall(playerID, matches), nil
}

// PlayerBySurface возвращает разбивку по всем покрытиям закрытого
// перечисления; покрытия без матчей заполняются нулями, чтобы контракт
// ответа не зависел от сыгранного.
func (s *statsService) PlayerBySurface(ctx context.Context, playerID string) (map[models.Surface]models.PlayerStats, error) {
	if err := s.requirePlayer(ctx, playerID); err != nil {
		return nil, err
	}

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	bySurface := stats.BySurface(playerID, snapshot.matches, snapshot.tournamentIndex())
	out := make(map[models.Surface]models.PlayerStats, len(models.AllSurfaces))
	for _, surface := range models.AllSurfaces {
		out[surface] = bySurface[surface]
	}
	return out, nil
}

func (s *statsService) PlayerByCategory(ctx context.Context, playerID string) (map[models.TournamentCategory]models.CategoryStats, error) {
	if err := s.requirePlayer(ctx, playerID); err != nil {
		return nil, err
	}

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := stats.ByCategory(playerID, snapshot.matches, snapshot.tournamentIndex())
	out := make(map[models.TournamentCategory]models.CategoryStats, len(models.AllCategories))
	for _, category := range models.AllCategories {
		out[category] = byCategory[category]
	}
	return out, nil
}

func (s *statsService) Records(ctx context.Context) (models.MatchRecords, error) {
	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return models.MatchRecords{}, err
	}
	return stats.Records(snapshot.matches, snapshot.tournamentIndex(), snapshot.playerIndex()), nil
}

func (s *statsService) Ranking(ctx context.Context) ([]models.RankingEntry, error) {
	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	// players приходят в порядке создания; при равенстве очков рейтинг
	// сохраняет этот порядок.
	return stats.Ranking(snapshot.players, snapshot.matches, snapshot.tournamentIndex()), nil
}

func (s *statsService) DavisCup(ctx context.Context, playerID string) (models.DavisCupSummary, error) {
	if err := s.requirePlayer(ctx, playerID); err != nil {
		return models.DavisCupSummary{}, err
	}

	snapshot, err := s.loadSnapshot(ctx)
	if err != nil {
		return models.DavisCupSummary{}, err
	}
	return stats.DavisCup(playerID, snapshot.matches, snapshot.tournamentIndex()), nil
}
