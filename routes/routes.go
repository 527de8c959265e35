package routes

import (
	"net/http"

	"github.com/dmateos23/tennis-tour-system/docs"
	"github.com/dmateos23/tennis-tour-system/handlers"
	"github.com/dmateos23/tennis-tour-system/metrics"
	"github.com/dmateos23/tennis-tour-system/middleware"
	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Admin      *handlers.AdminHandler
	Player     *handlers.PlayerHandler
	Tournament *handlers.TournamentHandler
	Match      *handlers.MatchHandler
	Stats      *handlers.StatsHandler
	WebSocket  *handlers.WebSocketHandler
}

func SetupRoutes(
	router *chi.Mux,
	h Handlers,
	auth *middleware.Authenticator,
	m metrics.Metrics,
	corsOrigins []string,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)
	router.Use(metrics.Middleware(m))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	router.Method(http.MethodGet, "/metrics", metrics.NewHandler())

	// Документация API
	router.Get("/swagger/doc.json", docs.ServeOpenAPI)
	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Живое табло
	router.Get("/ws/scoreboard", h.WebSocket.ServeWs)

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.LoginHandler)

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.Player.ListHandler)
			r.Post("/", h.Player.CreateHandler)
			r.Get("/{playerID}", h.Player.GetByIDHandler)
			r.Put("/{playerID}", h.Player.UpdateHandler)
			r.Delete("/{playerID}", h.Player.DeleteHandler)
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", h.Tournament.ListHandler)
			r.Post("/", h.Tournament.CreateHandler)
			r.Get("/{tournamentID}", h.Tournament.GetByIDHandler)
			r.Put("/{tournamentID}", h.Tournament.UpdateHandler)
			r.Delete("/{tournamentID}", h.Tournament.DeleteHandler)
			r.Put("/{tournamentID}/poster", h.Tournament.UploadPosterHandler)
			r.Delete("/{tournamentID}/poster", h.Tournament.DeletePosterHandler)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", h.Match.ListHandler)
			r.Post("/", h.Match.CreateHandler)
			r.Get("/{matchID}", h.Match.GetByIDHandler)
			r.Put("/{matchID}", h.Match.UpdateHandler)
			r.Delete("/{matchID}", h.Match.DeleteHandler)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/overall/{playerID}", h.Stats.OverallHandler)
			r.Get("/surface/{playerID}", h.Stats.BySurfaceHandler)
			r.Get("/tournament-category/{playerID}", h.Stats.ByCategoryHandler)
			r.Get("/records", h.Stats.RecordsHandler)
		})

		r.Get("/ranking", h.Stats.RankingHandler)
		r.Get("/davis-cup/winner/{playerID}", h.Stats.DavisCupHandler)

		// Защищённые административные маршруты
		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(middleware.RequireRole(models.RoleAdmin))

			r.Delete("/admin/cleanup", h.Admin.CleanupHandler)
		})
	})
}
