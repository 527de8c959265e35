package scoreboard

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/dmateos23/tennis-tour-system/metrics"
)

// Event types pushed to dashboard clients. The dashboard re-fetches the
// affected collections when one arrives.
const (
	EventMatchCreated   = "match_created"
	EventMatchUpdated   = "match_updated"
	EventMatchDeleted   = "match_deleted"
	EventRankingChanged = "ranking_changed"
)

// TourRoom receives every event regardless of tournament.
const TourRoom = "tour"

// Event - сообщение, рассылаемое клиентам табло.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
	Room    string      `json:"room,omitempty"`
}

// TournamentRoom names the per-tournament room.
func TournamentRoom(tournamentID string) string {
	return "tournament_" + tournamentID
}

// Hub раздаёт события по комнатам. Каждый клиент подписан ровно на одну
// комнату: либо на конкретный турнир, либо на весь тур.
type Hub struct {
	Register   chan *Client
	Unregister chan *Client

	rooms   map[string]map[*Client]bool
	mu      sync.RWMutex
	metrics metrics.Metrics
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger, m metrics.Metrics) *Hub {
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
		metrics:    m,
		logger:     logger,
	}
}

// Run обрабатывает подписки. Датчик числа клиентов обновляется здесь
// же, сразу после изменения комнат.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			if _, ok := h.rooms[client.room]; !ok {
				h.rooms[client.room] = make(map[*Client]bool)
			}
			h.rooms[client.room][client] = true
			total := h.countLocked()
			h.logger.Debug("scoreboard client registered",
				slog.String("room", client.room),
				slog.Int("room_clients", len(h.rooms[client.room])))
			h.mu.Unlock()
			h.metrics.SetScoreboardClients(total)

		case client := <-h.Unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.room]; ok {
				if _, okClient := clients[client]; okClient {
					client.closeSend()
					delete(clients, client)
					if len(clients) == 0 {
						delete(h.rooms, client.room)
					}
					h.logger.Debug("scoreboard client unregistered",
						slog.String("room", client.room))
				}
			}
			total := h.countLocked()
			h.mu.Unlock()
			h.metrics.SetScoreboardClients(total)
		}
	}
}

// Publish delivers the event to its tournament room (when set) and to
// the tour-wide room. A slow client is skipped rather than blocking the
// rest of the room.
func (h *Hub) Publish(event Event) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode scoreboard event",
			slog.String("type", event.Type),
			slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	h.sendToRoom(TourRoom, message)
	if event.Room != "" && event.Room != TourRoom {
		h.sendToRoom(event.Room, message)
	}
}

func (h *Hub) sendToRoom(room string, message []byte) {
	for client := range h.rooms[room] {
		if !client.trySend(message) {
			h.logger.Warn("scoreboard client send buffer full, dropping event",
				slog.String("room", room))
		}
	}
}

// ClientCount reports the number of connected clients across all rooms.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.countLocked()
}

func (h *Hub) countLocked() int {
	total := 0
	for _, clients := range h.rooms {
		total += len(clients)
	}
	return total
}
