package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dmateos23/tennis-tour-system/scoreboard"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Табло общедоступное и только читает; Origin не проверяем.
		return true
	},
}

type WebSocketHandler struct {
	hub    *scoreboard.Hub
	logger *slog.Logger
}

func NewWebSocketHandler(hub *scoreboard.Hub, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, logger: logger}
}

// ServeWs обрабатывает GET /ws/scoreboard?tournament_id=
// Без tournament_id клиент получает события всего тура.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	room := scoreboard.TourRoom
	if tournamentID := r.URL.Query().Get("tournament_id"); tournamentID != "" {
		if _, err := uuid.Parse(tournamentID); err != nil {
			badRequestResponse(w, r, err)
			return
		}
		room = scoreboard.TournamentRoom(tournamentID)
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.Any("error", err))
		return
	}

	client := scoreboard.NewClient(h.hub, conn, room, h.logger)
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
