// Command seed populates a running tour server with demo data through
// its HTTP API, so the dashboard has something to show.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/spf13/cobra"
)

var (
	host       string
	numPlayers int
	numMatches int
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the tour server with demo players, tournaments and matches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "The host address of the server")
	rootCmd.Flags().IntVar(&numPlayers, "players", 8, "How many players to create")
	rootCmd.Flags().IntVar(&numMatches, "matches", 40, "How many matches to record")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

var playerNames = []string{
	"Rafa Montoya", "Iván Quesada", "Marc Talavera", "Julio Cifuentes",
	"Andrés Bolaño", "Tomás Herrador", "Pau Ferrándiz", "Nico Sarmiento",
	"Álvaro Ledesma", "Bruno Cantero", "Jaime Urquijo", "Sergi Matamoros",
}

type tournamentSpec struct {
	name      string
	category  models.TournamentCategory
	surface   models.Surface
	real      string
	fictional string
}

var tournamentSpecs = []tournamentSpec{
	{"Abierto de Roquebrún", models.CategoryGrandSlam, models.SurfaceClay, "Paris", "Roquebrún"},
	{"Campeonato de Valdelfín", models.CategoryGrandSlam, models.SurfaceGrass, "London", "Valdelfín"},
	{"Masters de Puerto Claro", models.CategoryMasters1000, models.SurfaceHard, "Miami", "Puerto Claro"},
	{"Masters de Sierra Umbría", models.CategoryMasters1000, models.SurfaceClay, "Madrid", "Sierra Umbría"},
	{"Trofeo de Bahía Negra", models.CategoryMasters500, models.SurfaceHard, "Tokyo", "Bahía Negra"},
	{"Copa de Monteluz", models.CategoryMasters500, models.SurfaceIndoorHard, "Basel", "Monteluz"},
	{"Finales del Faro Real", models.CategoryATPFinals, models.SurfaceIndoorHard, "Turin", "Faro Real"},
}

func run() error {
	playerIDs := make([]string, 0, numPlayers)
	for i := 0; i < numPlayers; i++ {
		name := playerNames[i%len(playerNames)]
		if i >= len(playerNames) {
			name = fmt.Sprintf("%s %d", name, i/len(playerNames)+1)
		}
		id, err := create("/api/players", map[string]any{"name": name}, "player")
		if err != nil {
			return err
		}
		playerIDs = append(playerIDs, id)
		fmt.Printf("created player %s (%s)\n", name, id)
	}

	type seededTournament struct {
		id         string
		bestOfFive bool
	}
	tournaments := make([]seededTournament, 0, len(tournamentSpecs)+3)
	date := time.Now().AddDate(0, -8, 0)
	for _, spec := range tournamentSpecs {
		id, err := create("/api/tournaments", map[string]any{
			"name":               spec.name,
			"category":           spec.category,
			"surface":            spec.surface,
			"real_location":      spec.real,
			"fictional_location": spec.fictional,
			"tournament_date":    date.Format(time.RFC3339),
		}, "tournament")
		if err != nil {
			return err
		}
		tournaments = append(tournaments, seededTournament{id, spec.category == models.CategoryGrandSlam})
		fmt.Printf("created tournament %s (%s)\n", spec.name, id)
		date = date.AddDate(0, 1, 0)
	}
	// Противостояние Copa Davis: три матча, третий - best of five.
	for n := 1; n <= 3; n++ {
		id, err := create("/api/tournaments", map[string]any{
			"name":                   fmt.Sprintf("Copa Davis - Partido %d", n),
			"category":               models.CategoryCopaDavis,
			"surface":                models.SurfaceClay,
			"real_location":          "Sevilla",
			"fictional_location":     "Villaestela",
			"tournament_date":        date.Format(time.RFC3339),
			"davis_cup_match_number": n,
		}, "tournament")
		if err != nil {
			return err
		}
		tournaments = append(tournaments, seededTournament{id, n == 3})
		fmt.Printf("created Copa Davis match %d (%s)\n", n, id)
	}

	for i := 0; i < numMatches; i++ {
		t := tournaments[rand.Intn(len(tournaments))]
		p1 := playerIDs[rand.Intn(len(playerIDs))]
		p2 := playerIDs[rand.Intn(len(playerIDs))]
		for p2 == p1 {
			p2 = playerIDs[rand.Intn(len(playerIDs))]
		}

		sets, winner := randomScore(p1, p2, t.bestOfFive)
		duration := 60 + rand.Intn(180)
		_, err := create("/api/matches", map[string]any{
			"tournament_id":    t.id,
			"player1_id":       p1,
			"player2_id":       p2,
			"winner_id":        winner,
			"sets":             sets,
			"duration_minutes": duration,
		}, "match")
		if err != nil {
			return err
		}
	}
	fmt.Printf("recorded %d matches\n", numMatches)

	return nil
}

// randomScore генерирует корректный счёт: победитель набирает нужное
// число сетов, 7-6 всегда сопровождается тай-брейком.
func randomScore(p1, p2 string, bestOfFive bool) ([]map[string]any, string) {
	setsToWin := 2
	if bestOfFive {
		setsToWin = 3
	}

	p1IsWinner := rand.Intn(2) == 0
	loserSets := rand.Intn(setsToWin)

	order := make([]bool, 0, setsToWin+loserSets) // true = сет победителя
	for i := 0; i < setsToWin; i++ {
		order = append(order, true)
	}
	for i := 0; i < loserSets; i++ {
		order = append(order, false)
	}
	rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	// Последний сет всегда берёт победитель матча.
	for i, winnerTook := range order {
		if winnerTook {
			order[i], order[len(order)-1] = order[len(order)-1], order[i]
			break
		}
	}

	sets := make([]map[string]any, 0, len(order))
	for _, winnerTook := range order {
		p1Took := winnerTook == p1IsWinner
		sets = append(sets, randomSet(p1Took))
	}

	winner := p1
	if !p1IsWinner {
		winner = p2
	}
	return sets, winner
}

func randomSet(p1Took bool) map[string]any {
	set := map[string]any{}
	switch rand.Intn(4) {
	case 0: // 7-6 с тай-брейком
		tbLoser := rand.Intn(6)
		if p1Took {
			set["player1_games"], set["player2_games"] = 7, 6
			set["tiebreak_p1"], set["tiebreak_p2"] = 7, tbLoser
		} else {
			set["player1_games"], set["player2_games"] = 6, 7
			set["tiebreak_p1"], set["tiebreak_p2"] = tbLoser, 7
		}
	case 1: // 7-5
		if p1Took {
			set["player1_games"], set["player2_games"] = 7, 5
		} else {
			set["player1_games"], set["player2_games"] = 5, 7
		}
	default: // 6-x
		loser := rand.Intn(5)
		if p1Took {
			set["player1_games"], set["player2_games"] = 6, loser
		} else {
			set["player1_games"], set["player2_games"] = loser, 6
		}
	}
	return set
}

// create отправляет POST и возвращает id созданной сущности из
// конверта ответа {"<envelope>": {"id": ...}}.
func create(endpoint string, body map[string]any, envelope string) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	resp, err := http.Post(host+endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("POST %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var errBody map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return "", fmt.Errorf("POST %s: unexpected status %d: %v", endpoint, resp.StatusCode, errBody)
	}

	var result map[string]struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("POST %s: decode response: %w", endpoint, err)
	}
	return result[envelope].ID, nil
}
