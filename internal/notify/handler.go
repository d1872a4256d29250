package notify

import (
	"log/slog"
	"net/http"

	"anitrack/internal/api/repository"
	"anitrack/internal/auth"

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

// HandleWebSocket upgrades an authenticated connection and streams the
// caller's progress events. The token travels as a query parameter since
// browsers cannot set headers on websocket dials; verification matches
// the HTTP gate.
func HandleWebSocket(hub *Hub, secret []byte, sessions repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "No credentials sent!"})
			return
		}
		claims, err := auth.Parse(secret, token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Auth failed."})
			return
		}
		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil || userID == "" || userID != claims.UserID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Please login!"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			slog.Error("failed to upgrade connection", "error", err)
			return
		}

		client := &Client{
			UserID: userID,
			Conn:   conn,
			Send:   make(chan Event, 16),
		}
		hub.Register(client)

		go writePump(client)
		go readPump(hub, client)
	}
}

func writePump(client *Client) {
	defer client.Conn.Close()
	for evt := range client.Send {
		if err := client.Conn.WriteJSON(evt); err != nil {
			return
		}
	}
}

// readPump discards inbound frames; it exists to detect the close.
func readPump(hub *Hub, client *Client) {
	defer hub.Unregister(client)
	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
