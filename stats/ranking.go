package stats

import (
	"sort"

	"github.com/dmateos23/tennis-tour-system/models"
)

// Ranking awards every match winner the tournament's points and returns
// players ordered by total, best first. Players tied on points keep
// their relative input order, so callers should pass players sorted by
// creation time.
func Ranking(players []models.Player, matches []models.Match, tournaments map[string]models.Tournament) []models.RankingEntry {
	points := make(map[string]int, len(players))
	for _, player := range players {
		points[player.ID] = 0
	}

	for _, match := range matches {
		tournament, ok := tournaments[match.TournamentID]
		if !ok {
			continue
		}
		if _, known := points[match.WinnerID]; known {
			points[match.WinnerID] += tournament.Points
		}
	}

	ranking := make([]models.RankingEntry, 0, len(players))
	for _, player := range players {
		ranking = append(ranking, models.RankingEntry{
			PlayerID:   player.ID,
			PlayerName: player.Name,
			Points:     points[player.ID],
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Points > ranking[j].Points
	})
	for i := range ranking {
		ranking[i].Position = i + 1
	}
	return ranking
}
