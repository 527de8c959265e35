package stats

import (
	"testing"
	"time"

	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ip(v int) *int { return &v }

func set(p1, p2 int) models.SetResult {
	return models.SetResult{Player1Games: p1, Player2Games: p2}
}

func tbSet(p1, p2, tb1, tb2 int) models.SetResult {
	return models.SetResult{Player1Games: p1, Player2Games: p2, TiebreakP1: ip(tb1), TiebreakP2: ip(tb2)}
}

func stbSet(p1, p2, stb1, stb2 int) models.SetResult {
	return models.SetResult{Player1Games: p1, Player2Games: p2, SupertiebreakP1: ip(stb1), SupertiebreakP2: ip(stb2)}
}

func mkTournament(id string, category models.TournamentCategory, surface models.Surface) models.Tournament {
	return models.Tournament{
		ID:             id,
		Name:           "Torneo " + id,
		Category:       category,
		Surface:        surface,
		Points:         category.Points(),
		IsBestOfFive:   category == models.CategoryGrandSlam,
		TournamentDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func mkMatch(id, tournamentID, p1, p2, winner string, duration *int, sets ...models.SetResult) models.Match {
	return models.Match{
		ID:              id,
		TournamentID:    tournamentID,
		Player1ID:       p1,
		Player2ID:       p2,
		WinnerID:        winner,
		Sets:            sets,
		DurationMinutes: duration,
	}
}

func TestOverall(t *testing.T) {
	t.Run("no matches yields zeros, not NaN", func(t *testing.T) {
		got := Overall("p1", nil)
		assert.Equal(t, models.PlayerStats{}, got)
		assert.Zero(t, got.MatchesWonPercentage)
	})

	t.Run("one win out of two", func(t *testing.T) {
		matches := []models.Match{
			mkMatch("m1", "t1", "p1", "p2", "p1", ip(90), set(6, 4), set(6, 4)),
			mkMatch("m2", "t1", "p1", "p2", "p2", ip(150), set(6, 4), set(4, 6), set(4, 6)),
		}
		got := Overall("p1", matches)

		assert.Equal(t, 2, got.MatchesPlayed)
		assert.Equal(t, 1, got.MatchesWon)
		assert.InDelta(t, 50.0, got.MatchesWonPercentage, 0.001)
		assert.Equal(t, 5, got.SetsPlayed)
		assert.Equal(t, 3, got.SetsWon)
		assert.InDelta(t, 60.0, got.SetsWonPercentage, 0.001)
		assert.Equal(t, 240, got.TotalDurationMinutes)
		assert.InDelta(t, 4.0, got.TotalDurationHours, 0.001)
		assert.Equal(t, 120, got.AverageMatchDurationMinutes)
		assert.Equal(t, 48, got.AverageMinutesPerSet)
	})

	t.Run("matches of other players are ignored", func(t *testing.T) {
		matches := []models.Match{
			mkMatch("m1", "t1", "p1", "p2", "p1", ip(90), set(6, 4), set(6, 4)),
			mkMatch("m2", "t1", "p3", "p4", "p3", ip(120), set(6, 0), set(6, 0)),
		}
		got := Overall("p1", matches)
		assert.Equal(t, 1, got.MatchesPlayed)
	})

	t.Run("tiebreaks and supertiebreaks count separately", func(t *testing.T) {
		matches := []models.Match{
			mkMatch("m1", "t1", "p1", "p2", "p1", ip(130),
				tbSet(7, 6, 7, 5),
				tbSet(6, 7, 4, 7),
				stbSet(1, 0, 10, 8),
			),
		}
		got := Overall("p1", matches)

		assert.Equal(t, 2, got.TiebreaksPlayed)
		assert.Equal(t, 1, got.TiebreaksWon)
		assert.InDelta(t, 50.0, got.TiebreaksWonPercentage, 0.001)
		assert.Equal(t, 1, got.SupertiebreaksPlayed)
		assert.Equal(t, 1, got.SupertiebreaksWon)
		assert.InDelta(t, 100.0, got.SupertiebreaksWonPercentage, 0.001)

		fromOtherSide := Overall("p2", matches)
		assert.Equal(t, 1, fromOtherSide.TiebreaksWon)
		assert.Equal(t, 0, fromOtherSide.SupertiebreaksWon)
	})

	t.Run("missing durations count as zero", func(t *testing.T) {
		matches := []models.Match{
			mkMatch("m1", "t1", "p1", "p2", "p1", nil, set(6, 4), set(6, 4)),
			mkMatch("m2", "t1", "p1", "p2", "p1", ip(100), set(6, 4), set(6, 4)),
		}
		got := Overall("p1", matches)
		assert.Equal(t, 100, got.TotalDurationMinutes)
		assert.Equal(t, 50, got.AverageMatchDurationMinutes)
		assert.InDelta(t, 1.67, got.TotalDurationHours, 0.001)
	})
}

func TestBySurface(t *testing.T) {
	tournaments := map[string]models.Tournament{
		"hard":  mkTournament("hard", models.CategoryMasters1000, models.SurfaceHard),
		"clay":  mkTournament("clay", models.CategoryMasters500, models.SurfaceClay),
		"grass": mkTournament("grass", models.CategoryGrandSlam, models.SurfaceGrass),
	}
	matches := []models.Match{
		mkMatch("m1", "hard", "p1", "p2", "p1", ip(90), set(6, 4), set(6, 4)),
		mkMatch("m2", "hard", "p1", "p2", "p2", ip(80), set(4, 6), set(4, 6)),
		mkMatch("m3", "clay", "p1", "p2", "p1", ip(110), set(6, 3), set(6, 3)),
		mkMatch("m4", "ghost", "p1", "p2", "p1", ip(70), set(6, 0), set(6, 0)),
	}

	got := BySurface("p1", matches, tournaments)

	require.Len(t, got, 2, "only surfaces actually played should appear")
	hard := got[models.SurfaceHard]
	assert.Equal(t, 2, hard.MatchesPlayed)
	assert.Equal(t, 1, hard.MatchesWon)
	clay := got[models.SurfaceClay]
	assert.Equal(t, 1, clay.MatchesPlayed)
	assert.InDelta(t, 100.0, clay.MatchesWonPercentage, 0.001)
	_, hasGrass := got[models.SurfaceGrass]
	assert.False(t, hasGrass)
}

func TestByCategory(t *testing.T) {
	tournaments := map[string]models.Tournament{
		"gs": mkTournament("gs", models.CategoryGrandSlam, models.SurfaceGrass),
		"m5": mkTournament("m5", models.CategoryMasters500, models.SurfaceHard),
	}
	matches := []models.Match{
		mkMatch("m1", "gs", "p1", "p2", "p1", ip(200), set(6, 4), set(4, 6), set(6, 4)),
		mkMatch("m2", "gs", "p1", "p2", "p1", ip(100), set(6, 4), set(6, 4)),
		mkMatch("m3", "m5", "p1", "p2", "p2", ip(90), set(4, 6), set(4, 6)),
	}

	got := ByCategory("p1", matches, tournaments)

	require.Len(t, got, 2)
	gs := got[models.CategoryGrandSlam]
	assert.Equal(t, 2, gs.MatchesPlayed)
	assert.Equal(t, 5, gs.SetsPlayed)
	assert.InDelta(t, 2.5, gs.AverageSetsPerMatch, 0.001)
	assert.Equal(t, 300, gs.TotalDurationMinutes)
	assert.InDelta(t, 5.0, gs.TotalDurationHours, 0.001)
	assert.Equal(t, 60, gs.AverageMinutesPerSet)

	m5 := got[models.CategoryMasters500]
	assert.Equal(t, 0, m5.MatchesWon)
	assert.Zero(t, m5.MatchesWonPercentage)
}

func TestPercentageRounding(t *testing.T) {
	assert.InDelta(t, 33.33, percentage(1, 3), 0.0001)
	assert.InDelta(t, 66.67, percentage(2, 3), 0.0001)
	assert.Zero(t, percentage(0, 0))
	assert.Equal(t, 63, intAverage(125, 2))
	assert.Equal(t, 0, intAverage(100, 0))
}
