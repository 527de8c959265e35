package models

import "time"

// TournamentCategory - закрытый набор категорий турниров тура.
type TournamentCategory string

const (
	CategoryGrandSlam   TournamentCategory = "Grand Slam"
	CategoryMasters1000 TournamentCategory = "Masters 1000"
	CategoryMasters500  TournamentCategory = "Masters 500"
	CategoryATPFinals   TournamentCategory = "ATP Finals"
	CategoryCopaDavis   TournamentCategory = "Copa Davis"
)

// AllCategories enumerates every valid category, in declaration order.
var AllCategories = []TournamentCategory{
	CategoryGrandSlam,
	CategoryMasters1000,
	CategoryMasters500,
	CategoryATPFinals,
	CategoryCopaDavis,
}

// categoryPoints is the closed points table. Copa Davis awards no ranking
// points; its reward is the badge (see stats.DavisCup).
var categoryPoints = map[TournamentCategory]int{
	CategoryGrandSlam:   2000,
	CategoryMasters1000: 1000,
	CategoryMasters500:  500,
	CategoryATPFinals:   1500,
	CategoryCopaDavis:   0,
}

func (c TournamentCategory) Valid() bool {
	_, ok := categoryPoints[c]
	return ok
}

// Points returns the ranking points a match win is worth in this category.
func (c TournamentCategory) Points() int {
	return categoryPoints[c]
}

// Surface - закрытый набор покрытий.
type Surface string

const (
	SurfaceGrass      Surface = "Hierba"
	SurfaceHard       Surface = "Dura"
	SurfaceClay       Surface = "Tierra"
	SurfaceIndoorHard Surface = "Dura Indoor"
)

// AllSurfaces enumerates every playable surface. The order is fixed:
// favorite-surface ties resolve to the earliest entry.
var AllSurfaces = []Surface{
	SurfaceGrass,
	SurfaceHard,
	SurfaceClay,
	SurfaceIndoorHard,
}

func (s Surface) Valid() bool {
	for _, known := range AllSurfaces {
		if s == known {
			return true
		}
	}
	return false
}

// Tournament представляет один турнир вымышленного тура.
type Tournament struct {
	ID                string             `json:"id" db:"id"`
	Name              string             `json:"name" db:"name"`
	Category          TournamentCategory `json:"category" db:"category"`
	Surface           Surface            `json:"surface" db:"surface"`
	RealLocation      string             `json:"real_location" db:"real_location"`
	FictionalLocation string             `json:"fictional_location" db:"fictional_location"`
	TournamentDate    time.Time          `json:"tournament_date" db:"tournament_date"`
	Points            int                `json:"points" db:"points"`
	IsBestOfFive      bool               `json:"is_best_of_five" db:"is_best_of_five"`
	// 1, 2 or 3; set only for Copa Davis ties. The third match is played
	// best-of-five.
	DavisCupMatchNumber *int    `json:"davis_cup_match_number,omitempty" db:"davis_cup_match_number"`
	PosterKey           *string `json:"-" db:"poster_key"`
	PosterURL           *string `json:"poster_url,omitempty" db:"-"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}
