package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmateos23/tennis-tour-system/models"
	"github.com/dmateos23/tennis-tour-system/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlayerService implements services.PlayerService through func fields.
type fakePlayerService struct {
	createFunc func(ctx context.Context, input services.CreatePlayerInput) (*models.Player, error)
	getFunc    func(ctx context.Context, id string) (*models.Player, error)
	listFunc   func(ctx context.Context) ([]models.Player, error)
	updateFunc func(ctx context.Context, id string, input services.UpdatePlayerInput) (*models.Player, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (f *fakePlayerService) CreatePlayer(ctx context.Context, input services.CreatePlayerInput) (*models.Player, error) {
	return f.createFunc(ctx, input)
}

func (f *fakePlayerService) GetPlayerByID(ctx context.Context, id string) (*models.Player, error) {
	return f.getFunc(ctx, id)
}

func (f *fakePlayerService) ListPlayers(ctx context.Context) ([]models.Player, error) {
	return f.listFunc(ctx)
}

func (f *fakePlayerService) UpdatePlayer(ctx context.Context, id string, input services.UpdatePlayerInput) (*models.Player, error) {
	return f.updateFunc(ctx, id, input)
}

func (f *fakePlayerService) DeletePlayer(ctx context.Context, id string) error {
	return f.deleteFunc(ctx, id)
}

func playerRouter(service services.PlayerService) http.Handler {
	h := NewPlayerHandler(service)
	router := chi.NewRouter()
	router.Route("/api/players", func(r chi.Router) {
		r.Post("/", h.CreateHandler)
		r.Get("/", h.ListHandler)
		r.Get("/{playerID}", h.GetByIDHandler)
		r.Put("/{playerID}", h.UpdateHandler)
		r.Delete("/{playerID}", h.DeleteHandler)
	})
	return router
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const playerUUID = "2b8a1f8e-4a43-4a1c-9b37-02f9a2f4d9f1"

func TestPlayerCreateHandler(t *testing.T) {
	t.Run("creates and wraps the player", func(t *testing.T) {
		service := &fakePlayerService{
			createFunc: func(ctx context.Context, input services.CreatePlayerInput) (*models.Player, error) {
				return &models.Player{ID: playerUUID, Name: input.Name}, nil
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/api/players", strings.NewReader(`{"name":"Rafa Montoya"}`))
		rec := httptest.NewRecorder()
		playerRouter(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		require.Contains(t, body, "player")

		var player models.Player
		require.NoError(t, json.Unmarshal(body["player"], &player))
		assert.Equal(t, "Rafa Montoya", player.Name)
	})

	t.Run("blank name maps to 400", func(t *testing.T) {
		service := &fakePlayerService{
			createFunc: func(ctx context.Context, input services.CreatePlayerInput) (*models.Player, error) {
				return nil, services.ErrPlayerNameRequired
			},
		}

		req := httptest.NewRequest(http.MethodPost, "/api/players", strings.NewReader(`{"name":"  "}`))
		rec := httptest.NewRecorder()
		playerRouter(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec), "error")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/players", strings.NewReader(`{"name":`))
		rec := httptest.NewRecorder()
		playerRouter(&fakePlayerService{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/players", strings.NewReader(`{"name":"Rafa","ranking":1}`))
		rec := httptest.NewRecorder()
		playerRouter(&fakePlayerService{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPlayerGetByIDHandler(t *testing.T) {
	t.Run("invalid uuid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/players/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		playerRouter(&fakePlayerService{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown player maps to 404", func(t *testing.T) {
		service := &fakePlayerService{
			getFunc: func(ctx context.Context, id string) (*models.Player, error) {
				return nil, services.ErrPlayerNotFound
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/players/"+playerUUID, nil)
		rec := httptest.NewRecorder()
		playerRouter(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPlayerDeleteHandler(t *testing.T) {
	var deleted string
	service := &fakePlayerService{
		deleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/players/"+playerUUID, nil)
	rec := httptest.NewRecorder()
	playerRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, playerUUID, deleted)
}
