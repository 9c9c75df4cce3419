package controllers

import (
	"log"
	"net/http"

	"eyenova-backend/assistant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Configure properly for production
	},
}

type WebSocketController struct {
	assistant *assistant.Assistant
}

func NewWebSocketController(a *assistant.Assistant) *WebSocketController {
	return &WebSocketController{assistant: a}
}

// HandleWebSocket streams assistant replies over a socket. Each connection
// gets its own session unless the client supplies one.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	patientName := c.Query("patient_name")

	if err := conn.WriteJSON(map[string]string{"session_id": sessionID}); err != nil {
		log.Println("Write error:", err)
		return
	}

	for {
		var msg map[string]string
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("Read error:", err)
			}
			break
		}

		name := msg["patient_name"]
		if name == "" {
			name = patientName
		}

		reply := wc.assistant.Reply(msg["message"], name, sessionID)
		if err := conn.WriteJSON(map[string]string{
			"reply":      reply,
			"session_id": sessionID,
		}); err != nil {
			log.Println("Write error:", err)
			break
		}
	}
}
