package scoring

import (
	"fmt"
	"strings"

	"github.com/dmateos23/tennis-tour-system/models"
)

// NoSetsPlaceholder is rendered for a match without recorded sets.
const NoSetsPlaceholder = "no sets"

// FormatSets renders a scoreline like "7-6(7), 4-6, 6-4". Tiebreaks show
// only the winning score: parentheses for standard tiebreaks, brackets
// for supertiebreaks.
func FormatSets(sets []models.SetResult) string {
	if len(sets) == 0 {
		return NoSetsPlaceholder
	}
	parts := make([]string, 0, len(sets))
	for _, set := range sets {
		var b strings.Builder
		fmt.Fprintf(&b, "%d-%d", set.Player1Games, set.Player2Games)
		if set.HasTiebreak() {
			fmt.Fprintf(&b, "(%d)", max(*set.TiebreakP1, *set.TiebreakP2))
		}
		if set.HasSupertiebreak() {
			fmt.Fprintf(&b, "[%d]", max(*set.SupertiebreakP1, *set.SupertiebreakP2))
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ", ")
}

// FormatDuration renders minutes as "2h 15min".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}
