// File: tennis-tour-system/services/helpers.go
package services

import (
	"errors"

	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/dmateos23/tennis-tour-system/repositories"
	"github.com/dmateos23/tennis-tour-system/storage"
)

// --- Общие хелперы ---

// mapRepositoryError переводит ошибки "не найдено" репозиториев в ошибки
// сервисного слоя; остальное пробрасывается как есть.
func mapRepositoryError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrPlayerNotFound):
		return ErrPlayerNotFound
	case errors.Is(err, repositories.ErrTournamentNotFound):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrMatchNotFound):
		return ErrMatchNotFound
	case errors.Is(err, repositories.ErrMatchInvalidTournament):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrMatchInvalidPlayer):
		return ErrPlayerNotFound
	}
	return err
}

// --- Хелперы для заполнения публичных URL постеров ---

func populateTournamentPosterURL(t *models.Tournament, uploader storage.FileUploader) {
	if t == nil || uploader == nil {
		return
	}
	if t.PosterKey != nil && *t.PosterKey != "" {
		if url := uploader.GetPublicURL(*t.PosterKey); url != "" {
			t.PosterURL = &url
		}
	}
}

func populateTournamentListPosterURLs(tournaments []models.Tournament, uploader storage.FileUploader) {
	if uploader == nil {
		return
	}
	for i := range tournaments {
		populateTournamentPosterURL(&tournaments[i], uploader)
	}
}

// tournamentsByID строит индекс для статистики: агрегатор ищет турнир
// матча по его id.
func tournamentsByID(tournaments []models.Tournament) map[string]models.Tournament {
	index := make(map[string]models.Tournament, len(tournaments))
	for _, t := range tournaments {
		index[t.ID] = t
	}
	return index
}

func playersByID(players []models.Player) map[string]models.Player {
	index := make(map[string]models.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}
	return index
}
