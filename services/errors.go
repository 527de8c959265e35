package services

import "errors"

// Общие ошибки сервисного слоя, используемые в маппинге HTTP.
var (
	// Ошибки валидации и бизнес-правил
	ErrPlayerNameRequired       = errors.New("player name is required")
	ErrTournamentNameRequired   = errors.New("tournament name is required")
	ErrTournamentDateRequired   = errors.New("tournament date is required")
	ErrInvalidCategory          = errors.New("unknown tournament category")
	ErrInvalidSurface           = errors.New("unknown tournament surface")
	ErrInvalidDavisCupNumber    = errors.New("davis cup match number must be between 1 and 3")
	ErrDavisCupNumberNotAllowed = errors.New("davis cup match number is only valid for Copa Davis")

	// Ошибки аутентификации
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Ошибки, специфичные для сущностей
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")

	// Ошибки загрузки постеров
	ErrPosterStorageDisabled = errors.New("poster storage is not configured")
	ErrPosterNotFound        = errors.New("tournament has no poster")
	ErrUnsupportedPosterType = errors.New("poster must be a jpeg, png or webp image")
)
