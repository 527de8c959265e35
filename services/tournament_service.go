package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/dmateos23/tennis-tour-system/repositories"
	"github.com/dmateos23/tennis-tour-system/storage"
	"github.com/google/uuid"
)

type CreateTournamentInput struct {
	Name                string                    `json:"name"`
	Category            models.TournamentCategory `json:"category"`
	Surface             models.Surface            `json:"surface"`
	RealLocation        string                    `json:"real_location"`
	FictionalLocation   string                    `json:"fictional_location"`
	TournamentDate      time.Time                 `json:"tournament_date"`
	DavisCupMatchNumber *int                      `json:"davis_cup_match_number"`
}

// UpdateTournamentInput повторяет CreateTournamentInput: обновление
// всегда полное, как в исходном API.
type UpdateTournamentInput = CreateTournamentInput

type TournamentService interface {
	CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error)
	GetTournamentByID(ctx context.Context, id string) (*models.Tournament, error)
	ListTournaments(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error)
	UpdateTournament(ctx context.Context, id string, input UpdateTournamentInput) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id string) error
	UploadPoster(ctx context.Context, id string, contentType string, file io.Reader) (*models.Tournament, error)
	DeletePoster(ctx context.Context, id string) error
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	uploader       storage.FileUploader
	logger         *slog.Logger
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		uploader:       uploader,
		logger:         logger,
	}
}

// validateTournamentInput отклоняет неизвестные категории и покрытия на
// границе вместо подстановки значения по умолчанию.
func validateTournamentInput(input CreateTournamentInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrTournamentNameRequired
	}
	if !input.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, input.Category)
	}
	if !input.Surface.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSurface, input.Surface)
	}
	if input.TournamentDate.IsZero() {
		return ErrTournamentDateRequired
	}
	if input.DavisCupMatchNumber != nil {
		if input.Category != models.CategoryCopaDavis {
			return ErrDavisCupNumberNotAllowed
		}
		if n := *input.DavisCupMatchNumber; n < 1 || n > 3 {
			return ErrInvalidDavisCupNumber
		}
	}
	return nil
}

// bestOfFiveFor: Grand Slam всегда играется до трёх выигранных сетов,
// в Copa Davis - только третий, решающий, матч противостояния.
func bestOfFiveFor(category models.TournamentCategory, davisCupMatchNumber *int) bool {
	switch category {
	case models.CategoryGrandSlam:
		return true
	case models.CategoryCopaDavis:
		return davisCupMatchNumber != nil && *davisCupMatchNumber == 3
	}
	return false
}

func (s *tournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	if err := validateTournamentInput(input); err != nil {
		return nil, err
	}

	tournament := &models.Tournament{
		ID:                  uuid.NewString(),
		Name:                strings.TrimSpace(input.Name),
		Category:            input.Category,
		Surface:             input.Surface,
		RealLocation:        strings.TrimSpace(input.RealLocation),
		FictionalLocation:   strings.TrimSpace(input.FictionalLocation),
		TournamentDate:      input.TournamentDate,
		Points:              input.Category.Points(),
		IsBestOfFive:        bestOfFiveFor(input.Category, input.DavisCupMatchNumber),
		DavisCupMatchNumber: input.DavisCupMatchNumber,
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return tournament, nil
}

func (s *tournamentService) GetTournamentByID(ctx context.Context, id string) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	populateTournamentPosterURL(tournament, s.uploader)
	return tournament, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context, filter repositories.ListTournamentsFilter) ([]models.Tournament, error) {
	if filter.Category != nil && !filter.Category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, *filter.Category)
	}
	if filter.Surface != nil && !filter.Surface.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSurface, *filter.Surface)
	}

	tournaments, err := s.tournamentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	populateTournamentListPosterURLs(tournaments, s.uploader)
	return tournaments, nil
}

func (s *tournamentService) UpdateTournament(ctx context.Context, id string, input UpdateTournamentInput) (*models.Tournament, error) {
	if err := validateTournamentInput(input); err != nil {
		return nil, err
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	tournament.Name = strings.TrimSpace(input.Name)
	tournament.Category = input.Category
	tournament.Surface = input.Surface
	tournament.RealLocation = strings.TrimSpace(input.RealLocation)
	tournament.FictionalLocation = strings.TrimSpace(input.FictionalLocation)
	tournament.TournamentDate = input.TournamentDate
	tournament.Points = input.Category.Points()
	tournament.IsBestOfFive = bestOfFiveFor(input.Category, input.DavisCupMatchNumber)
	tournament.DavisCupMatchNumber = input.DavisCupMatchNumber

	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		return nil, mapRepositoryError(err)
	}
	populateTournamentPosterURL(tournament, s.uploader)
	return tournament, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id string) error {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	// Осиротевший постер удаляем по принципу best effort.
	if s.uploader != nil && tournament.PosterKey != nil && *tournament.PosterKey != "" {
		if err := s.uploader.Delete(ctx, *tournament.PosterKey); err != nil {
			s.logger.Warn("failed to delete tournament poster from storage",
				slog.String("tournament_id", id),
				slog.String("poster_key", *tournament.PosterKey),
				slog.Any("error", err))
		}
	}
	return nil
}

var posterExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

func (s *tournamentService) UploadPoster(ctx context.Context, id string, contentType string, file io.Reader) (*models.Tournament, error) {
	if s.uploader == nil {
		return nil, ErrPosterStorageDisabled
	}
	ext, ok := posterExtensions[contentType]
	if !ok {
		return nil, fmt.Errorf("%w: got %q", ErrUnsupportedPosterType, contentType)
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	key := fmt.Sprintf("tournaments/%s/poster.%s", tournament.ID, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload poster: %w", err)
	}

	oldKey := tournament.PosterKey
	if err := s.tournamentRepo.UpdatePosterKey(ctx, tournament.ID, &result.Key); err != nil {
		return nil, mapRepositoryError(err)
	}
	tournament.PosterKey = &result.Key

	if oldKey != nil && *oldKey != "" && *oldKey != result.Key {
		if err := s.uploader.Delete(ctx, *oldKey); err != nil {
			s.logger.Warn("failed to delete replaced poster",
				slog.String("poster_key", *oldKey),
				slog.Any("error", err))
		}
	}

	populateTournamentPosterURL(tournament, s.uploader)
	return tournament, nil
}

func (s *tournamentService) DeletePoster(ctx context.Context, id string) error {
	if s.uploader == nil {
		return ErrPosterStorageDisabled
	}

	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if tournament.PosterKey == nil || *tournament.PosterKey == "" {
		return ErrPosterNotFound
	}

	if err := s.uploader.Delete(ctx, *tournament.PosterKey); err != nil {
		return fmt.Errorf("failed to delete poster from storage: %w", err)
	}
	return mapRepositoryError(s.tournamentRepo.UpdatePosterKey(ctx, tournament.ID, nil))
}
