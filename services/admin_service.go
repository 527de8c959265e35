package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dmateos23/tennis-tour-system/repositories"
)

type AdminService interface {
	// Cleanup удаляет все матчи, турниры и игроков одной транзакцией.
	Cleanup(ctx context.Context) error
}

type adminService struct {
	db             *sql.DB
	matchRepo      repositories.MatchRepository
	tournamentRepo repositories.TournamentRepository
	playerRepo     repositories.PlayerRepository
	logger         *slog.Logger
}

func NewAdminService(
	db *sql.DB,
	matchRepo repositories.MatchRepository,
	tournamentRepo repositories.TournamentRepository,
	playerRepo repositories.PlayerRepository,
	logger *slog.Logger,
) AdminService {
	return &adminService{
		db:             db,
		matchRepo:      matchRepo,
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		logger:         logger,
	}
}

func (s *adminService) Cleanup(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin cleanup transaction: %w", err)
	}
	defer tx.Rollback()

	// Матчи первыми: они ссылаются и на турниры, и на игроков.
	if err := s.matchRepo.DeleteAll(ctx, tx); err != nil {
		return fmt.Errorf("failed to delete matches: %w", err)
	}
	if err := s.tournamentRepo.DeleteAll(ctx, tx); err != nil {
		return fmt.Errorf("failed to delete tournaments: %w", err)
	}
	if err := s.playerRepo.DeleteAll(ctx, tx); err != nil {
		return fmt.Errorf("failed to delete players: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cleanup transaction: %w", err)
	}

	s.logger.Info("tour data cleaned up")
	return nil
}
