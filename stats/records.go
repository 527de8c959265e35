// tennis-tour-system/stats/records.go
package stats

import (
	"math"

	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/dmateos23/tennis-tour-system/scoring"
)

// Records scans the whole match collection and reports the most extreme
// match per category. Entries stay nil when no match qualifies.
func Records(matches []models.Match, tournaments map[string]models.Tournament, players map[string]models.Player) models.MatchRecords {
	records := models.MatchRecords{
		FavoriteSurfaces: favoriteSurfaces(matches, tournaments, players),
	}

	// Biggest beatdown: widest games gap between winner and loser. The
	// gap is absolute, so a winner who was out-gamed overall still
	// competes with the full distance.
	bestDiff := math.MinInt
	for _, match := range matches {
		winnerGames, loserGames := winnerLoserGames(match)
		diff := winnerGames - loserGames
		if diff < 0 {
			diff = -diff
		}
		if diff > bestDiff {
			bestDiff = diff
			info := buildRecordInfo(match, tournaments, players)
			records.BiggestBeatdown = &models.BeatdownRecord{
				MatchRecordInfo:   info,
				WinnerGames:       winnerGames,
				LoserGames:        loserGames,
				GamesDifferential: diff,
			}
		}
	}

	// Longest and most epic both maximize duration; matches without a
	// recorded duration do not compete.
	longest := -1
	for _, match := range matches {
		if match.DurationMinutes == nil {
			continue
		}
		if *match.DurationMinutes > longest {
			longest = *match.DurationMinutes
			info := buildRecordInfo(match, tournaments, players)
			records.LongestMatch = &info
		}
	}
	if records.LongestMatch != nil {
		epic := *records.LongestMatch
		records.MostEpic = &epic
	}

	// Most tiebreaks: at least one breaker is required to hold the record.
	bestBreakers := 0
	for _, match := range matches {
		tiebreaks, supertiebreaks := countBreakers(match)
		if total := tiebreaks + supertiebreaks; total > bestBreakers {
			bestBreakers = total
			info := buildRecordInfo(match, tournaments, players)
			records.MostTiebreaks = &models.TiebreakRecord{
				MatchRecordInfo: info,
				Tiebreaks:       tiebreaks,
				Supertiebreaks:  supertiebreaks,
				TotalBreakers:   total,
			}
		}
	}

	return records
}

func winnerLoserGames(match models.Match) (winner, loser int) {
	p1, p2 := match.TotalGames()
	if match.WinnerID == match.Player1ID {
		return p1, p2
	}
	return p2, p1
}

func countBreakers(match models.Match) (tiebreaks, supertiebreaks int) {
	for _, set := range match.Sets {
		if set.HasTiebreak() {
			tiebreaks++
		}
		if set.HasSupertiebreak() {
			supertiebreaks++
		}
	}
	return tiebreaks, supertiebreaks
}

// favoriteSurfaces picks, per player, the surface with the best win rate
// among surfaces they played at least once. Ties prefer the surface with
// more matches, then the earlier entry in models.AllSurfaces.
func favoriteSurfaces(matches []models.Match, tournaments map[string]models.Tournament, players map[string]models.Player) map[string]models.FavoriteSurface {
	type record struct{ wins, total int }

	out := make(map[string]models.FavoriteSurface)
	for playerID, player := range players {
		counts := make(map[models.Surface]*record)
		for _, match := range matches {
			if !match.Involves(playerID) {
				continue
			}
			tournament, ok := tournaments[match.TournamentID]
			if !ok {
				continue
			}
			r := counts[tournament.Surface]
			if r == nil {
				r = &record{}
				counts[tournament.Surface] = r
			}
			r.total++
			if match.WinnerID == playerID {
				r.wins++
			}
		}

		var best *record
		var bestSurface models.Surface
		for _, surface := range models.AllSurfaces {
			r := counts[surface]
			if r == nil || r.total == 0 {
				continue
			}
			if best == nil || betterRate(r.wins, r.total, best.wins, best.total) {
				best = r
				bestSurface = surface
			}
		}
		if best == nil {
			continue
		}
		out[playerID] = models.FavoriteSurface{
			PlayerName: player.Name,
			Surface:    bestSurface,
			Wins:       best.wins,
			Total:      best.total,
			Percentage: round1(float64(best.wins) / float64(best.total) * 100),
		}
	}
	return out
}

// betterRate compares win rates without floats: a/b > c/d iff a*d > c*b.
// Equal rates fall back to the larger sample.
func betterRate(wins, total, bestWins, bestTotal int) bool {
	left, right := wins*bestTotal, bestWins*total
	if left != right {
		return left > right
	}
	return total > bestTotal
}

func buildRecordInfo(match models.Match, tournaments map[string]models.Tournament, players map[string]models.Player) models.MatchRecordInfo {
	info := models.MatchRecordInfo{
		TournamentName: "Unknown",
		Player1Name:    playerName(players, match.Player1ID),
		Player2Name:    playerName(players, match.Player2ID),
		WinnerName:     playerName(players, match.WinnerID),
		Score:          scoring.FormatSets(match.Sets),
		Sets:           match.Sets,
	}
	if match.DurationMinutes != nil {
		info.DurationMinutes = *match.DurationMinutes
	}
	info.DurationFormatted = scoring.FormatDuration(info.DurationMinutes)
	if tournament, ok := tournaments[match.TournamentID]; ok {
		info.TournamentName = tournament.Name
		info.Surface = tournament.Surface
		date := tournament.TournamentDate
		info.Date = &date
	}
	return info
}

func playerName(players map[string]models.Player, id string) string {
	if player, ok := players[id]; ok {
		return player.Name
	}
	return "Unknown"
}
