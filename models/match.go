package models

import "time"

// SetResult - счёт одного сета. Tiebreak and supertiebreak pairs are
// either both set or both nil; the wire contract keeps explicit nulls.
type SetResult struct {
	Player1Games    int  `json:"player1_games"`
	Player2Games    int  `json:"player2_games"`
	TiebreakP1      *int `json:"tiebreak_p1"`
	TiebreakP2      *int `json:"tiebreak_p2"`
	SupertiebreakP1 *int `json:"supertiebreak_p1"`
	SupertiebreakP2 *int `json:"supertiebreak_p2"`
}

// HasTiebreak reports whether the set carries a standard tiebreak score.
func (s SetResult) HasTiebreak() bool {
	return s.TiebreakP1 != nil && s.TiebreakP2 != nil
}

// HasSupertiebreak reports whether the set carries a 10-point tiebreak score.
func (s SetResult) HasSupertiebreak() bool {
	return s.SupertiebreakP1 != nil && s.SupertiebreakP2 != nil
}

// Match представляет сыгранный матч. Sets хранятся в порядке розыгрыша.
type Match struct {
	ID              string      `json:"id" db:"id"`
	TournamentID    string      `json:"tournament_id" db:"tournament_id"`
	Player1ID       string      `json:"player1_id" db:"player1_id"`
	Player2ID       string      `json:"player2_id" db:"player2_id"`
	WinnerID        string      `json:"winner_id" db:"winner_id"`
	Sets            []SetResult `json:"sets" db:"sets"`
	DurationMinutes *int        `json:"duration_minutes" db:"duration_minutes"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
}

// TotalGames returns the games won by each side across all sets.
func (m Match) TotalGames() (p1, p2 int) {
	for _, set := range m.Sets {
		p1 += set.Player1Games
		p2 += set.Player2Games
	}
	return p1, p2
}

// Involves reports whether the player took part in the match.
func (m Match) Involves(playerID string) bool {
	return m.Player1ID == playerID || m.Player2ID == playerID
}
