package scoring

import (
	"testing"

	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatSets(t *testing.T) {
	t.Run("plain set", func(t *testing.T) {
		got := FormatSets([]models.SetResult{{Player1Games: 6, Player2Games: 4}})
		assert.Equal(t, "6-4", got)
	})

	t.Run("tiebreak shows the winning score only", func(t *testing.T) {
		got := FormatSets([]models.SetResult{
			{Player1Games: 7, Player2Games: 6, TiebreakP1: ip(7), TiebreakP2: ip(5)},
		})
		assert.Equal(t, "7-6(7)", got)

		got = FormatSets([]models.SetResult{
			{Player1Games: 6, Player2Games: 7, TiebreakP1: ip(3), TiebreakP2: ip(7)},
		})
		assert.Equal(t, "6-7(7)", got)
	})

	t.Run("supertiebreak uses brackets", func(t *testing.T) {
		got := FormatSets([]models.SetResult{
			{Player1Games: 1, Player2Games: 0, SupertiebreakP1: ip(10), SupertiebreakP2: ip(8)},
		})
		assert.Equal(t, "1-0[10]", got)
	})

	t.Run("sets join in playing order", func(t *testing.T) {
		got := FormatSets([]models.SetResult{
			{Player1Games: 7, Player2Games: 6, TiebreakP1: ip(7), TiebreakP2: ip(5)},
			{Player1Games: 4, Player2Games: 6},
			{Player1Games: 1, Player2Games: 0, SupertiebreakP1: ip(10), SupertiebreakP2: ip(8)},
		})
		assert.Equal(t, "7-6(7), 4-6, 1-0[10]", got)
	})

	t.Run("empty scoreline has a placeholder", func(t *testing.T) {
		assert.Equal(t, NoSetsPlaceholder, FormatSets(nil))
	})
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2h 5min", FormatDuration(125))
	assert.Equal(t, "0h 45min", FormatDuration(45))
	assert.Equal(t, "1h 0min", FormatDuration(60))
	assert.Equal(t, "0h 0min", FormatDuration(0))
}
