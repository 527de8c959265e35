package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/lib/pq"
)

var (
	ErrTournamentNotFound    = errors.New("tournament not found")
	ErrTournamentInvalidData = errors.New("tournament violates a data constraint")
)

type ListTournamentsFilter struct {
	Category *models.TournamentCategory
	Surface  *models.Surface
}

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id string) (*models.Tournament, error)
	List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error)
	Update(ctx context.Context, tournament *models.Tournament) error
	Delete(ctx context.Context, id string) error
	UpdatePosterKey(ctx context.Context, tournamentID string, posterKey *string) error
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	query := `
		INSERT INTO tournaments (
			id, name, category, surface, real_location, fictional_location,
			tournament_date, points, is_best_of_five, davis_cup_match_number
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		t.ID, t.Name, t.Category, t.Surface, t.RealLocation, t.FictionalLocation,
		t.TournamentDate, t.Points, t.IsBestOfFive, t.DavisCupMatchNumber,
	).Scan(&t.CreatedAt)

	return r.handleTournamentError(err)
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	query := `
		SELECT
			id, name, category, surface, real_location, fictional_location,
			tournament_date, points, is_best_of_five, davis_cup_match_number,
			poster_key, created_at
		FROM tournaments
		WHERE id = $1`

	t := &models.Tournament{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Category, &t.Surface, &t.RealLocation, &t.FictionalLocation,
		&t.TournamentDate, &t.Points, &t.IsBestOfFive, &t.DavisCupMatchNumber,
		&t.PosterKey, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context, filter ListTournamentsFilter) ([]models.Tournament, error) {
	query := `
		SELECT
			id, name, category, surface, real_location, fictional_location,
			tournament_date, points, is_best_of_five, davis_cup_match_number,
			poster_key, created_at
		FROM tournaments
		WHERE 1=1`

	args := []interface{}{}
	argID := 1

	if filter.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argID)
		args = append(args, *filter.Category)
		argID++
	}
	if filter.Surface != nil {
		query += fmt.Sprintf(" AND surface = $%d", argID)
		args = append(args, *filter.Surface)
		argID++
	}

	query += " ORDER BY tournament_date ASC, created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if scanErr := rows.Scan(
			&t.ID, &t.Name, &t.Category, &t.Surface, &t.RealLocation, &t.FictionalLocation,
			&t.TournamentDate, &t.Points, &t.IsBestOfFive, &t.DavisCupMatchNumber,
			&t.PosterKey, &t.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		tournaments = append(tournaments, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *postgresTournamentRepository) Update(ctx context.Context, t *models.Tournament) error {
	// poster_key is owned by UpdatePosterKey
	query := `
		UPDATE tournaments SET
			name = $1,
			category = $2,
			surface = $3,
			real_location = $4,
			fictional_location = $5,
			tournament_date = $6,
			points = $7,
			is_best_of_five = $8,
			davis_cup_match_number = $9
		WHERE id = $10`

	result, err := r.db.ExecContext(ctx, query,
		t.Name, t.Category, t.Surface, t.RealLocation, t.FictionalLocation,
		t.TournamentDate, t.Points, t.IsBestOfFive, t.DavisCupMatchNumber,
		t.ID,
	)
	if err != nil {
		return r.handleTournamentError(err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tournaments WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return r.handleTournamentError(err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) UpdatePosterKey(ctx context.Context, tournamentID string, posterKey *string) error {
	query := `UPDATE tournaments SET poster_key = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, posterKey, tournamentID)
	if err != nil {
		return fmt.Errorf("failed to update tournament poster key: %w", err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx, `DELETE FROM tournaments`)
	return err
}

func (r *postgresTournamentRepository) handleTournamentError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23514" {
		return fmt.Errorf("%w: %s", ErrTournamentInvalidData, pqErr.Constraint)
	}
	return err
}
