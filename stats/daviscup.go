package stats

import "github.com/dmateos23/tennis-tour-system/models"

// davisCupWinsNeeded is the match-win threshold inside one Copa Davis
// tie (best of three rubbers).
const davisCupWinsNeeded = 2

// DavisCup counts how many Copa Davis ties the player has won. Every
// tie the player appears in is grouped by tournament; two match wins
// take the tie.
func DavisCup(playerID string, matches []models.Match, tournaments map[string]models.Tournament) models.DavisCupSummary {
	wins := make(map[string]int)
	for _, match := range matches {
		if !match.Involves(playerID) {
			continue
		}
		tournament, ok := tournaments[match.TournamentID]
		if !ok || tournament.Category != models.CategoryCopaDavis {
			continue
		}
		if _, seen := wins[match.TournamentID]; !seen {
			wins[match.TournamentID] = 0
		}
		if match.WinnerID == playerID {
			wins[match.TournamentID]++
		}
	}

	victories := 0
	for _, won := range wins {
		if won >= davisCupWinsNeeded {
			victories++
		}
	}
	return models.DavisCupSummary{
		PlayerID:          playerID,
		DavisCupVictories: victories,
		HasDavisCupBadge:  victories > 0,
	}
}
