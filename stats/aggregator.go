package stats

import (
	"math"

	"github.com/dmateos23/tennis-tour-system/models"
)

// tally accumulates one player's counters across a bucket of matches.
type tally struct {
	matchesPlayed      int
	matchesWon         int
	setsPlayed         int
	setsWon            int
	tiebreaksPlayed    int
	tiebreaksWon       int
	supertiebreaksWon  int
	supertiebreaksDone int
	durationMinutes    int
}

func (t *tally) addMatch(playerID string, match models.Match) {
	t.matchesPlayed++
	if match.WinnerID == playerID {
		t.matchesWon++
	}
	if match.DurationMinutes != nil {
		t.durationMinutes += *match.DurationMinutes
	}

	isPlayer1 := match.Player1ID == playerID
	for _, set := range match.Sets {
		t.setsPlayed++

		// Ties cannot be stored; if one slips through it counts for player2.
		p1TookSet := set.Player1Games > set.Player2Games
		if p1TookSet == isPlayer1 {
			t.setsWon++
		}

		if set.HasTiebreak() {
			t.tiebreaksPlayed++
			p1TookBreak := *set.TiebreakP1 > *set.TiebreakP2
			if p1TookBreak == isPlayer1 {
				t.tiebreaksWon++
			}
		}
		if set.HasSupertiebreak() {
			t.supertiebreaksDone++
			p1TookBreak := *set.SupertiebreakP1 > *set.SupertiebreakP2
			if p1TookBreak == isPlayer1 {
				t.supertiebreaksWon++
			}
		}
	}
}

func (t tally) playerStats() models.PlayerStats {
	return models.PlayerStats{
		MatchesPlayed:               t.matchesPlayed,
		MatchesWon:                  t.matchesWon,
		MatchesWonPercentage:        percentage(t.matchesWon, t.matchesPlayed),
		SetsPlayed:                  t.setsPlayed,
		SetsWon:                     t.setsWon,
		SetsWonPercentage:           percentage(t.setsWon, t.setsPlayed),
		TiebreaksPlayed:             t.tiebreaksPlayed,
		TiebreaksWon:                t.tiebreaksWon,
		TiebreaksWonPercentage:      percentage(t.tiebreaksWon, t.tiebreaksPlayed),
		SupertiebreaksPlayed:        t.supertiebreaksDone,
		SupertiebreaksWon:           t.supertiebreaksWon,
		SupertiebreaksWonPercentage: percentage(t.supertiebreaksWon, t.supertiebreaksDone),
		TotalDurationMinutes:        t.durationMinutes,
		TotalDurationHours:          round2(float64(t.durationMinutes) / 60),
		AverageMatchDurationMinutes: intAverage(t.durationMinutes, t.matchesPlayed),
		AverageMinutesPerSet:        intAverage(t.durationMinutes, t.setsPlayed),
	}
}

func (t tally) categoryStats() models.CategoryStats {
	var setsPerMatch float64
	if t.matchesPlayed > 0 {
		setsPerMatch = round2(float64(t.setsPlayed) / float64(t.matchesPlayed))
	}
	return models.CategoryStats{
		MatchesPlayed:               t.matchesPlayed,
		MatchesWon:                  t.matchesWon,
		MatchesWonPercentage:        percentage(t.matchesWon, t.matchesPlayed),
		SetsPlayed:                  t.setsPlayed,
		SetsWon:                     t.setsWon,
		SetsWonPercentage:           percentage(t.setsWon, t.setsPlayed),
		TotalDurationMinutes:        t.durationMinutes,
		TotalDurationHours:          round2(float64(t.durationMinutes) / 60),
		AverageMatchDurationMinutes: intAverage(t.durationMinutes, t.matchesPlayed),
		AverageSetsPerMatch:         setsPerMatch,
		AverageMinutesPerSet:        intAverage(t.durationMinutes, t.setsPlayed),
	}
}

// Overall computes a player's summary across every match they took part
// in. Matches not involving the player are ignored, so callers may pass
// an unfiltered collection.
func Overall(playerID string, matches []models.Match) models.PlayerStats {
	var t tally
	for _, match := range matches {
		if !match.Involves(playerID) {
			continue
		}
		t.addMatch(playerID, match)
	}
	return t.playerStats()
}

// BySurface buckets the player's matches by the tournament surface and
// computes a summary per surface actually played. Matches whose
// tournament is unknown are skipped.
func BySurface(playerID string, matches []models.Match, tournaments map[string]models.Tournament) map[models.Surface]models.PlayerStats {
	tallies := make(map[models.Surface]*tally)
	for _, match := range matches {
		if !match.Involves(playerID) {
			continue
		}
		tournament, ok := tournaments[match.TournamentID]
		if !ok {
			continue
		}
		t := tallies[tournament.Surface]
		if t == nil {
			t = &tally{}
			tallies[tournament.Surface] = t
		}
		t.addMatch(playerID, match)
	}

	out := make(map[models.Surface]models.PlayerStats, len(tallies))
	for surface, t := range tallies {
		out[surface] = t.playerStats()
	}
	return out
}

// ByCategory buckets the player's matches by tournament category.
func ByCategory(playerID string, matches []models.Match, tournaments map[string]models.Tournament) map[models.TournamentCategory]models.CategoryStats {
	tallies := make(map[models.TournamentCategory]*tally)
	for _, match := range matches {
		if !match.Involves(playerID) {
			continue
		}
		tournament, ok := tournaments[match.TournamentID]
		if !ok {
			continue
		}
		t := tallies[tournament.Category]
		if t == nil {
			t = &tally{}
			tallies[tournament.Category] = t
		}
		t.addMatch(playerID, match)
	}

	out := make(map[models.TournamentCategory]models.CategoryStats, len(tallies))
	for category, t := range tallies {
		out[category] = t.categoryStats()
	}
	return out
}

// percentage returns 100*part/total rounded to two decimals, 0 when the
// denominator is zero.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func intAverage(total, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}
