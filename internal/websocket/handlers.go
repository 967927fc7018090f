// internal/websocket/handlers.go
// WebSocket connection handlers

package websocket

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleConnection handles new WebSocket connections
func HandleConnection(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID uint32
		if v, exists := c.Get("user_id"); exists {
			if id, ok := v.(uint32); ok {
				userID = id
			}
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("failed to upgrade connection: %v", err)
			return
		}

		client := &Client{
			hub:         hub,
			conn:        conn,
			send:        make(chan []byte, 256),
			userID:      userID,
			tournaments: make([]uint32, 0),
		}

		hub.register <- client

		welcomeMsg := Message{
			Type: "welcome",
			Data: map[string]interface{}{
				"message": "connected to the swiss pairing engine websocket",
				"user_id": userID,
			},
		}
		if data, err := json.Marshal(welcomeMsg); err == nil {
			client.send <- data
		}

		go client.writePump()
		go client.readPump()
	}
}

// Message types for WebSocket communication
const (
	MessagePairingsGenerated = "pairings_generated"
	MessageResultUpdated     = "result_updated"
)
