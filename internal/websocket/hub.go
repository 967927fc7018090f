// internal/websocket/hub.go
// WebSocket hub manages client connections and message broadcasting

package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"swiss-pairing-engine/internal/engine"
)

// Hub maintains active websocket connections and broadcasts messages.
// It implements services.Broadcaster.
type Hub struct {
	tournaments map[uint32]map[*Client]bool
	users       map[uint32]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message

	logger *log.Logger

	mu sync.RWMutex
}

// Message represents a WebSocket message
type Message struct {
	Type         string      `json:"type"`
	TournamentID uint32      `json:"tournament_id,omitempty"`
	UserID       uint32      `json:"user_id,omitempty"`
	Data         interface{} `json:"data"`
}

// NewHub creates a new WebSocket hub
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		tournaments: make(map[uint32]map[*Client]bool),
		users:       make(map[uint32]*Client),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		broadcast:   make(chan *Message, 256),
		logger:      logger,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client.userID != 0 {
		if existing, exists := h.users[client.userID]; exists {
			existing.close()
			h.removeClient(existing)
		}
		h.users[client.userID] = client
	}

	for _, tournamentID := range client.tournaments {
		if h.tournaments[tournamentID] == nil {
			h.tournaments[tournamentID] = make(map[*Client]bool)
		}
		h.tournaments[tournamentID][client] = true
	}

	h.logger.Printf("client registered: user %d (tournaments: %v)", client.userID, client.tournaments)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeClient(client)
	client.close()

	h.logger.Printf("client unregistered: user %d", client.userID)
}

func (h *Hub) removeClient(client *Client) {
	if client.userID != 0 {
		delete(h.users, client.userID)
	}

	for _, tournamentID := range client.tournaments {
		if clients, exists := h.tournaments[tournamentID]; exists {
			delete(clients, client)
			if len(clients) == 0 {
				delete(h.tournaments, tournamentID)
			}
		}
	}
}

func (h *Hub) broadcastMessage(message *Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Printf("failed to marshal message: %v", err)
		return
	}

	if message.TournamentID != 0 {
		if clients, exists := h.tournaments[message.TournamentID]; exists {
			for client := range clients {
				select {
				case client.send <- data:
				default:
					h.removeClient(client)
					client.close()
				}
			}
		}
	}

	if message.UserID != 0 {
		if client, exists := h.users[message.UserID]; exists {
			select {
			case client.send <- data:
			default:
				h.removeClient(client)
				client.close()
			}
		}
	}
}

// BroadcastPairingsGenerated notifies every client subscribed to a
// tournament that a new round's pairings were committed, satisfying
// services.Broadcaster for the pairings_generated event spec.md §6.5
// names.
func (h *Hub) BroadcastPairingsGenerated(tournamentID uint32, round uint32, pairings []engine.NewPairingRow) {
	boards := make([]boardPayload, 0, len(pairings))
	for _, p := range pairings {
		boards = append(boards, boardPayload{Board: p.Board, WhiteID: p.WhiteID, BlackID: p.BlackID})
	}
	h.broadcast <- &Message{
		Type:         "pairings_generated",
		TournamentID: tournamentID,
		Data: map[string]interface{}{
			"round":  round,
			"boards": boards,
		},
	}
}

// BroadcastResultUpdated notifies clients that a board's result changed.
func (h *Hub) BroadcastResultUpdated(tournamentID uint32, round, board uint32, result string) {
	h.broadcast <- &Message{
		Type:         "result_updated",
		TournamentID: tournamentID,
		Data: map[string]interface{}{
			"round":  round,
			"board":  board,
			"result": result,
		},
	}
}

// boardPayload is the wire shape of one board within a pairings_generated
// event payload. Named distinctly from engine.NewPairingRow since it
// omits the internal tournament/round fields already in the envelope.
type boardPayload struct {
	Board   uint32 `json:"board"`
	WhiteID uint32 `json:"white_id"`
	BlackID uint32 `json:"black_id"`
}

// SubscribeToTournament subscribes a client to tournament updates
func (h *Hub) SubscribeToTournament(client *Client, tournamentID uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client.tournaments = append(client.tournaments, tournamentID)

	if h.tournaments[tournamentID] == nil {
		h.tournaments[tournamentID] = make(map[*Client]bool)
	}
	h.tournaments[tournamentID][client] = true

	h.logger.Printf("client %d subscribed to tournament %d", client.userID, tournamentID)
}

// UnsubscribeFromTournament unsubscribes a client from tournament updates
func (h *Hub) UnsubscribeFromTournament(client *Client, tournamentID uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, id := range client.tournaments {
		if id == tournamentID {
			client.tournaments = append(client.tournaments[:i], client.tournaments[i+1:]...)
			break
		}
	}

	if clients, exists := h.tournaments[tournamentID]; exists {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.tournaments, tournamentID)
		}
	}

	h.logger.Printf("client %d unsubscribed from tournament %d", client.userID, tournamentID)
}
