package models

import "time"

// PlayerStats - сводная статистика игрока. Used both for the overall
// summary and for each per-surface bucket. Percentages are rounded to
// two decimals, averages to whole units.
type PlayerStats struct {
	MatchesPlayed               int     `json:"matches_played"`
	MatchesWon                  int     `json:"matches_won"`
	MatchesWonPercentage        float64 `json:"matches_won_percentage"`
	SetsPlayed                  int     `json:"sets_played"`
	SetsWon                     int     `json:"sets_won"`
	SetsWonPercentage           float64 `json:"sets_won_percentage"`
	TiebreaksPlayed             int     `json:"tiebreaks_played"`
	TiebreaksWon                int     `json:"tiebreaks_won"`
	TiebreaksWonPercentage      float64 `json:"tiebreaks_won_percentage"`
	SupertiebreaksPlayed        int     `json:"supertiebreaks_played"`
	SupertiebreaksWon           int     `json:"supertiebreaks_won"`
	SupertiebreaksWonPercentage float64 `json:"supertiebreaks_won_percentage"`
	TotalDurationMinutes        int     `json:"total_duration_minutes"`
	TotalDurationHours          float64 `json:"total_duration_hours"`
	AverageMatchDurationMinutes int     `json:"average_match_duration_minutes"`
	AverageMinutesPerSet        int     `json:"average_minutes_per_set"`
}

// CategoryStats - статистика игрока в разрезе категории турнира.
// Tiebreak counters are not broken down per category.
type CategoryStats struct {
	MatchesPlayed               int     `json:"matches_played"`
	MatchesWon                  int     `json:"matches_won"`
	MatchesWonPercentage        float64 `json:"matches_won_percentage"`
	SetsPlayed                  int     `json:"sets_played"`
	SetsWon                     int     `json:"sets_won"`
	SetsWonPercentage           float64 `json:"sets_won_percentage"`
	TotalDurationMinutes        int     `json:"total_duration_minutes"`
	TotalDurationHours          float64 `json:"total_duration_hours"`
	AverageMatchDurationMinutes int     `json:"average_match_duration_minutes"`
	AverageSetsPerMatch         float64 `json:"average_sets_per_match"`
	AverageMinutesPerSet        int     `json:"average_minutes_per_set"`
}

// RankingEntry - строка текущего рейтинга.
type RankingEntry struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Points     int    `json:"points"`
	Position   int    `json:"position"`
}

// DavisCupSummary - итог выступлений игрока в Copa Davis. A tie is won
// with at least two match wins inside one tournament.
type DavisCupSummary struct {
	PlayerID          string `json:"player_id"`
	DavisCupVictories int    `json:"davis_cup_victories"`
	HasDavisCupBadge  bool   `json:"has_davis_cup_badge"`
}

// MatchRecordInfo carries the display fields shared by every match record.
type MatchRecordInfo struct {
	TournamentName    string      `json:"tournament_name"`
	Surface           Surface     `json:"surface"`
	Player1Name       string      `json:"player1_name"`
	Player2Name       string      `json:"player2_name"`
	WinnerName        string      `json:"winner_name"`
	DurationMinutes   int         `json:"duration_minutes"`
	DurationFormatted string      `json:"duration_formatted"`
	Score             string      `json:"score"`
	Sets              []SetResult `json:"sets"`
	Date              *time.Time  `json:"date"`
}

// BeatdownRecord - победа с максимальной разницей геймов.
type BeatdownRecord struct {
	MatchRecordInfo
	WinnerGames       int `json:"winner_games"`
	LoserGames        int `json:"loser_games"`
	GamesDifferential int `json:"games_differential"`
}

// TiebreakRecord - матч с наибольшим числом тай-брейков.
type TiebreakRecord struct {
	MatchRecordInfo
	Tiebreaks      int `json:"tiebreaks"`
	Supertiebreaks int `json:"supertiebreaks"`
	TotalBreakers  int `json:"total_breakers"`
}

// FavoriteSurface - покрытие с лучшим процентом побед игрока.
// Percentage is rounded to one decimal.
type FavoriteSurface struct {
	PlayerName string  `json:"player_name"`
	Surface    Surface `json:"surface"`
	Wins       int     `json:"wins"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// MatchRecords groups every tour record. Nil entries mean no match
// qualified yet.
type MatchRecords struct {
	BiggestBeatdown  *BeatdownRecord            `json:"biggest_beatdown"`
	LongestMatch     *MatchRecordInfo           `json:"longest_match"`
	MostEpic         *MatchRecordInfo           `json:"most_epic"`
	MostTiebreaks    *TiebreakRecord            `json:"most_tiebreaks"`
	FavoriteSurfaces map[string]FavoriteSurface `json:"favorite_surfaces"`
}
