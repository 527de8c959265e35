package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareObservesRequests(t *testing.T) {
	mock := NewMock()

	router := chi.NewRouter()
	router.Use(Middleware(mock))
	router.Get("/api/players/{playerID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/players/p1", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, 1, mock.Requests())
}
