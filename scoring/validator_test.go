package scoring

import (
	"testing"

	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ip(v int) *int { return &v }

func validBestOfThreeMatch() (models.Match, models.Tournament) {
	match := models.Match{
		ID:           "m1",
		TournamentID: "t1",
		Player1ID:    "p1",
		Player2ID:    "p2",
		WinnerID:     "p1",
		Sets: []models.SetResult{
			{Player1Games: 6, Player2Games: 4},
			{Player1Games: 7, Player2Games: 6, TiebreakP1: ip(7), TiebreakP2: ip(5)},
		},
	}
	tournament := models.Tournament{
		ID:           "t1",
		Name:         "Abierto de Valdebebas",
		Category:     models.CategoryMasters1000,
		Surface:      models.SurfaceHard,
		IsBestOfFive: false,
	}
	return match, tournament
}

func TestValidateMatch(t *testing.T) {
	t.Run("well-formed match passes", func(t *testing.T) {
		match, tournament := validBestOfThreeMatch()
		require.NoError(t, ValidateMatch(match, tournament))
	})

	t.Run("missing references are rejected", func(t *testing.T) {
		base, tournament := validBestOfThreeMatch()

		noTournament, _ := validBestOfThreeMatch()
		require.ErrorIs(t, ValidateMatch(noTournament, models.Tournament{}), ErrMissingField)

		noPlayer1 := base
		noPlayer1.Player1ID = ""
		require.ErrorIs(t, ValidateMatch(noPlayer1, tournament), ErrMissingField)

		noWinner := base
		noWinner.WinnerID = ""
		require.ErrorIs(t, ValidateMatch(noWinner, tournament), ErrMissingField)
	})

	t.Run("a player cannot face themselves", func(t *testing.T) {
		match, tournament := validBestOfThreeMatch()
		match.Player2ID = match.Player1ID
		require.ErrorIs(t, ValidateMatch(match, tournament), ErrDuplicatePlayers)
	})

	t.Run("winner must be a participant", func(t *testing.T) {
		match, tournament := validBestOfThreeMatch()
		match.WinnerID = "p3"
		require.ErrorIs(t, ValidateMatch(match, tournament), ErrInvalidWinner)
	})

	t.Run("at least one set is required", func(t *testing.T) {
		match, tournament := validBestOfThreeMatch()
		match.Sets = nil
		require.ErrorIs(t, ValidateMatch(match, tournament), ErrEmptySets)
	})

	t.Run("set count is capped by the format", func(t *testing.T) {
		match, tournament := validBestOfThreeMatch()
		set := models.SetResult{Player1Games: 6, Player2Games: 4}
		match.Sets = []models.SetResult{set, set, set, set}
		require.ErrorIs(t, ValidateMatch(match, tournament), ErrTooManySets)

		tournament.IsBestOfFive = true
		assert.NoError(t, ValidateMatch(match, tournament))
	})

	t.Run("tied sets are rejected whatever the score", func(t *testing.T) {
		for _, games := range []int{0, 5, 6, 7} {
			match, tournament := validBestOfThreeMatch()
			match.Sets = []models.SetResult{{Player1Games: games, Player2Games: games}}
			assert.ErrorIs(t, ValidateMatch(match, tournament), ErrTiedSet, "games %d-%d", games, games)
		}
	})

	t.Run("negative games are rejected", func(t *testing.T) {
		match, tournament := validBestOfThreeMatch()
		match.Sets = []models.SetResult{{Player1Games: -1, Player2Games: 4}}
		require.ErrorIs(t, ValidateMatch(match, tournament), ErrNegativeGames)
	})

	t.Run("7-6 in either direction needs both tiebreak scores", func(t *testing.T) {
		cases := []struct {
			name string
			set  models.SetResult
			want error
		}{
			{"7-6 without tiebreak", models.SetResult{Player1Games: 7, Player2Games: 6}, ErrMissingTiebreak},
			{"6-7 without tiebreak", models.SetResult{Player1Games: 6, Player2Games: 7}, ErrMissingTiebreak},
			{"7-6 with half a tiebreak", models.SetResult{Player1Games: 7, Player2Games: 6, TiebreakP1: ip(7)}, ErrMissingTiebreak},
			{"7-6 with full tiebreak", models.SetResult{Player1Games: 7, Player2Games: 6, TiebreakP1: ip(7), TiebreakP2: ip(4)}, nil},
			{"7-5 needs no tiebreak", models.SetResult{Player1Games: 7, Player2Games: 5}, nil},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				match, tournament := validBestOfThreeMatch()
				match.Sets = []models.SetResult{tc.set}
				err := ValidateMatch(match, tournament)
				if tc.want == nil {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, tc.want)
				}
			})
		}
	})

	t.Run("set errors name the offending set", func(t *testing.T) {
		match, tournament := validBestOfThreeMatch()
		match.Sets = []models.SetResult{
			{Player1Games: 6, Player2Games: 4},
			{Player1Games: 3, Player2Games: 3},
		}
		err := ValidateMatch(match, tournament)
		require.ErrorIs(t, err, ErrTiedSet)
		assert.Contains(t, err.Error(), "set 2")
	})
}
