package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound          = errors.New("match not found")
	ErrMatchInvalidTournament = errors.New("match references an unknown tournament")
	ErrMatchInvalidPlayer     = errors.New("match references an unknown player")
	ErrMatchSamePlayers       = errors.New("match players must be distinct")
)

type ListMatchesFilter struct {
	PlayerID     *string
	TournamentID *string
}

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id string) (*models.Match, error)
	List(ctx context.Context, filter ListMatchesFilter) ([]models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresMatchRepository) Create(ctx context.Context, m *models.Match) error {
	setsJSON, err := json.Marshal(m.Sets)
	if err != nil {
		return fmt.Errorf("failed to encode sets: %w", err)
	}

	query := `
		INSERT INTO matches (
			id, tournament_id, player1_id, player2_id, winner_id, sets, duration_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err = r.db.QueryRowContext(ctx, query,
		m.ID, m.TournamentID, m.Player1ID, m.Player2ID, m.WinnerID, setsJSON, m.DurationMinutes,
	).Scan(&m.CreatedAt)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	query := `
		SELECT id, tournament_id, player1_id, player2_id, winner_id, sets, duration_minutes, created_at
		FROM matches
		WHERE id = $1`

	m := &models.Match{}
	var setsJSON []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.TournamentID, &m.Player1ID, &m.Player2ID, &m.WinnerID,
		&setsJSON, &m.DurationMinutes, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	if err = json.Unmarshal(setsJSON, &m.Sets); err != nil {
		return nil, fmt.Errorf("failed to decode sets for match %s: %w", m.ID, err)
	}
	return m, nil
}

func (r *postgresMatchRepository) List(ctx context.Context, filter ListMatchesFilter) ([]models.Match, error) {
	query := `
		SELECT id, tournament_id, player1_id, player2_id, winner_id, sets, duration_minutes, created_at
		FROM matches
		WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.PlayerID != nil {
		query += fmt.Sprintf(" AND (player1_id = $%d OR player2_id = $%d)", argID, argID)
		args = append(args, *filter.PlayerID)
		argID++
	}
	if filter.TournamentID != nil {
		query += fmt.Sprintf(" AND tournament_id = $%d", argID)
		args = append(args, *filter.TournamentID)
		argID++
	}

	query += " ORDER BY created_at ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		var setsJSON []byte
		if scanErr := rows.Scan(
			&m.ID, &m.TournamentID, &m.Player1ID, &m.Player2ID, &m.WinnerID,
			&setsJSON, &m.DurationMinutes, &m.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		if err = json.Unmarshal(setsJSON, &m.Sets); err != nil {
			return nil, fmt.Errorf("failed to decode sets for match %s: %w", m.ID, err)
		}
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) Update(ctx context.Context, m *models.Match) error {
	setsJSON, err := json.Marshal(m.Sets)
	if err != nil {
		return fmt.Errorf("failed to encode sets: %w", err)
	}

	query := `
		UPDATE matches SET
			tournament_id = $1,
			player1_id = $2,
			player2_id = $3,
			winner_id = $4,
			sets = $5,
			duration_minutes = $6
		WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query,
		m.TournamentID, m.Player1ID, m.Player2ID, m.WinnerID, setsJSON, m.DurationMinutes,
		m.ID,
	)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM matches WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx, `DELETE FROM matches`)
	return err
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case "23503":
		switch pqErr.Constraint {
		case "matches_tournament_id_fkey":
			return ErrMatchInvalidTournament
		case "matches_player1_id_fkey", "matches_player2_id_fkey", "matches_winner_id_fkey":
			return ErrMatchInvalidPlayer
		}
	case "23514":
		if pqErr.Constraint == "matches_distinct_players_check" {
			return ErrMatchSamePlayers
		}
	}
	return err
}
