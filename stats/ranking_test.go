package stats

import (
	"testing"

	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRanking(t *testing.T) {
	players := []models.Player{
		{ID: "p1", Name: "Rafa Torres"},
		{ID: "p2", Name: "Nole Petrov"},
		{ID: "p3", Name: "Carlos Vega"},
	}
	tournaments := map[string]models.Tournament{
		"gs":    mkTournament("gs", models.CategoryGrandSlam, models.SurfaceGrass),
		"m1000": mkTournament("m1000", models.CategoryMasters1000, models.SurfaceHard),
		"davis": mkTournament("davis", models.CategoryCopaDavis, models.SurfaceClay),
	}

	t.Run("points follow tournament category", func(t *testing.T) {
		matches := []models.Match{
			mkMatch("m1", "gs", "p1", "p2", "p1", ip(200), set(6, 4), set(6, 4), set(6, 4)),
			mkMatch("m2", "m1000", "p2", "p3", "p2", ip(90), set(6, 4), set(6, 4)),
			mkMatch("m3", "m1000", "p2", "p1", "p2", ip(95), set(6, 4), set(6, 4)),
			mkMatch("m4", "davis", "p3", "p1", "p3", ip(80), set(6, 4), set(6, 4)),
		}
		got := Ranking(players, matches, tournaments)

		require.Len(t, got, 3)
		assert.Equal(t, []models.RankingEntry{
			{PlayerID: "p1", PlayerName: "Rafa Torres", Points: 2000, Position: 1},
			{PlayerID: "p2", PlayerName: "Nole Petrov", Points: 2000, Position: 2},
			{PlayerID: "p3", PlayerName: "Carlos Vega", Points: 0, Position: 3},
		}, got)
	})

	t.Run("ties keep creation order", func(t *testing.T) {
		matches := []models.Match{
			mkMatch("m1", "m1000", "p2", "p3", "p2", ip(90), set(6, 4), set(6, 4)),
			mkMatch("m2", "m1000", "p3", "p1", "p3", ip(90), set(6, 4), set(6, 4)),
		}
		got := Ranking(players, matches, tournaments)

		require.Len(t, got, 3)
		assert.Equal(t, "p2", got[0].PlayerID)
		assert.Equal(t, "p3", got[1].PlayerID)
		assert.Equal(t, "p1", got[2].PlayerID)
		assert.Equal(t, 0, got[2].Points)
	})

	t.Run("unknown tournaments and winners award nothing", func(t *testing.T) {
		matches := []models.Match{
			mkMatch("m1", "ghost", "p1", "p2", "p1", ip(90), set(6, 4), set(6, 4)),
			mkMatch("m2", "gs", "px", "py", "px", ip(90), set(6, 4), set(6, 4)),
		}
		got := Ranking(players, matches, tournaments)

		for _, entry := range got {
			assert.Zero(t, entry.Points)
		}
	})

	t.Run("no players yields an empty ranking", func(t *testing.T) {
		got := Ranking(nil, nil, tournaments)
		assert.Empty(t, got)
	})
}
