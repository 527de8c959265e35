package scoring

import "github.com/dmateos23/tennis-tour-system/models"

// Side identifies one half of a match scoreline.
type Side int

const (
	SideUndecided Side = iota
	SidePlayer1
	SidePlayer2
)

// PlayerID resolves the side to a concrete player id, "" when undecided.
func (s Side) PlayerID(player1ID, player2ID string) string {
	switch s {
	case SidePlayer1:
		return player1ID
	case SidePlayer2:
		return player2ID
	}
	return ""
}

// SetsToWin returns how many set wins decide the match.
func SetsToWin(isBestOfFive bool) int {
	if isBestOfFive {
		return 3
	}
	return 2
}

// MaxSets returns the longest possible set sequence for the format.
func MaxSets(isBestOfFive bool) int {
	if isBestOfFive {
		return 5
	}
	return 3
}

// DeriveWinner tallies set wins over the full sequence and reports which
// side reached the required count. Tied sets award no point; the tally is
// terminal, so an unfinished scoreline comes back SideUndecided.
func DeriveWinner(sets []models.SetResult, isBestOfFive bool) Side {
	needed := SetsToWin(isBestOfFive)
	var p1, p2 int
	for _, set := range sets {
		switch {
		case set.Player1Games > set.Player2Games:
			p1++
		case set.Player2Games > set.Player1Games:
			p2++
		}
	}
	switch {
	case p1 >= needed:
		return SidePlayer1
	case p2 >= needed:
		return SidePlayer2
	}
	return SideUndecided
}

// IsDecisive reports whether the zero-based set position is the format's
// last possible slot. Only that slot plays a 10-point supertiebreak at
// 6-6; every other set plays a standard tiebreak.
func IsDecisive(index int, isBestOfFive bool) bool {
	if isBestOfFive {
		return index == 4
	}
	return index == 2
}
