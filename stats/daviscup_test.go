package stats

import (
	"testing"

	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/stretchr/testify/assert"
)

func TestDavisCup(t *testing.T) {
	tournaments := map[string]models.Tournament{
		"davis1": mkTournament("davis1", models.CategoryCopaDavis, models.SurfaceHard),
		"davis2": mkTournament("davis2", models.CategoryCopaDavis, models.SurfaceClay),
		"m1000":  mkTournament("m1000", models.CategoryMasters1000, models.SurfaceHard),
	}

	t.Run("two rubber wins take the tie", func(t *testing.T) {
		matches := []models.Match{
			mkMatch("m1", "davis1", "p1", "p2", "p1", ip(90), set(6, 4), set(6, 4)),
			mkMatch("m2", "davis1", "p1", "p2", "p2", ip(95), set(4, 6), set(4, 6)),
			mkMatch("m3", "davis1", "p1", "p2", "p1", ip(120), set(6, 4), set(4, 6), set(6, 4)),
			mkMatch("m4", "davis2", "p1", "p2", "p1", ip(90), set(6, 4), set(6, 4)),
			mkMatch("m5", "davis2", "p1", "p2", "p2", ip(90), set(4, 6), set(4, 6)),
			mkMatch("m6", "davis2", "p1", "p2", "p2", ip(90), set(4, 6), set(4, 6)),
			mkMatch("m7", "m1000", "p1", "p2", "p1", ip(90), set(6, 4), set(6, 4)),
		}

		got := DavisCup("p1", matches, tournaments)
		assert.Equal(t, "p1", got.PlayerID)
		assert.Equal(t, 1, got.DavisCupVictories, "only davis1 was won with two rubbers")
		assert.True(t, got.HasDavisCupBadge)

		rival := DavisCup("p2", matches, tournaments)
		assert.Equal(t, 1, rival.DavisCupVictories, "davis2 went to the rival")
		assert.True(t, rival.HasDavisCupBadge)
	})

	t.Run("one rubber win is not enough", func(t *testing.T) {
		matches := []models.Match{
			mkMatch("m1", "davis1", "p1", "p2", "p1", ip(90), set(6, 4), set(6, 4)),
			mkMatch("m2", "davis1", "p1", "p2", "p2", ip(90), set(4, 6), set(4, 6)),
		}
		got := DavisCup("p1", matches, tournaments)
		assert.Zero(t, got.DavisCupVictories)
		assert.False(t, got.HasDavisCupBadge)
	})

	t.Run("no davis cup appearances", func(t *testing.T) {
		matches := []models.Match{
			mkMatch("m1", "m1000", "p1", "p2", "p1", ip(90), set(6, 4), set(6, 4)),
		}
		got := DavisCup("p1", matches, tournaments)
		assert.Equal(t, models.DavisCupSummary{PlayerID: "p1"}, got)
	})
}
