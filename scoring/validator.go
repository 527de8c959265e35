package scoring

import (
	"errors"
	"fmt"

	"github.com/dmateos23/tennis-tour-system/models"
)

var (
	ErrMissingField     = errors.New("tournament, both players and winner are required")
	ErrDuplicatePlayers = errors.New("a player cannot play against themselves")
	ErrInvalidWinner    = errors.New("winner must be one of the two players")
	ErrEmptySets        = errors.New("match must contain at least one set")
	ErrTooManySets      = errors.New("set count exceeds the match format")
	ErrNegativeGames    = errors.New("game counts cannot be negative")
	ErrTiedSet          = errors.New("a set cannot end with equal games")
	ErrMissingTiebreak  = errors.New("a set decided 7-6 requires both tiebreak scores")
)

// ValidateMatch проверяет корректность матча перед сохранением.
// It deliberately does not compare the declared winner against the set
// tally; DeriveWinner owns that reconciliation.
func ValidateMatch(match models.Match, tournament models.Tournament) error {
	if tournament.ID == "" || match.Player1ID == "" || match.Player2ID == "" || match.WinnerID == "" {
		return ErrMissingField
	}
	if match.Player1ID == match.Player2ID {
		return ErrDuplicatePlayers
	}
	if match.WinnerID != match.Player1ID && match.WinnerID != match.Player2ID {
		return ErrInvalidWinner
	}
	if len(match.Sets) == 0 {
		return ErrEmptySets
	}
	if len(match.Sets) > MaxSets(tournament.IsBestOfFive) {
		return fmt.Errorf("%w: got %d sets", ErrTooManySets, len(match.Sets))
	}
	for i, set := range match.Sets {
		if err := validateSet(set); err != nil {
			return fmt.Errorf("set %d: %w", i+1, err)
		}
	}
	return nil
}

func validateSet(set models.SetResult) error {
	if set.Player1Games < 0 || set.Player2Games < 0 {
		return ErrNegativeGames
	}
	if set.Player1Games == set.Player2Games {
		return ErrTiedSet
	}
	sevenSix := (set.Player1Games == 7 && set.Player2Games == 6) ||
		(set.Player1Games == 6 && set.Player2Games == 7)
	if sevenSix && !set.HasTiebreak() {
		return ErrMissingTiebreak
	}
	return nil
}
