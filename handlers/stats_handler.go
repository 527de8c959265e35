package handlers

import (
	"net/http"

	"github.com/dmateos23/tennis-tour-system/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(ss services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: ss}
}

// OverallHandler обрабатывает GET /api/stats/overall/{playerID}
func (h *StatsHandler) OverallHandler(w http.ResponseWriter, r *http.Request) {
	playerID, err := getUUIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	playerStats, err := h.statsService.PlayerOverall(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stats": playerStats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// BySurfaceHandler обрабатывает GET /api/stats/surface/{playerID}
func (h *StatsHandler) BySurfaceHandler(w http.ResponseWriter, r *http.Request) {
	playerID, err := getUUIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	surfaceStats, err := h.statsService.PlayerBySurface(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"surface_stats": surfaceStats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ByCategoryHandler обрабатывает GET /api/stats/tournament-category/{playerID}
func (h *StatsHandler) ByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	playerID, err := getUUIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	categoryStats, err := h.statsService.PlayerByCategory(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"category_stats": categoryStats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordsHandler обрабатывает GET /api/stats/records
func (h *StatsHandler) RecordsHandler(w http.ResponseWriter, r *http.Request) {
	records, err := h.statsService.Records(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"records": records}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RankingHandler обрабатывает GET /api/ranking
func (h *StatsHandler) RankingHandler(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.statsService.Ranking(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"ranking": ranking}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DavisCupHandler обрабатывает GET /api/davis-cup/winner/{playerID}
func (h *StatsHandler) DavisCupHandler(w http.ResponseWriter, r *http.Request) {
	playerID, err := getUUIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	summary, err := h.statsService.DavisCup(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"davis_cup": summary}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
