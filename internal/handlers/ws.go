package handlers

import (
	"log"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/lensakita/studio_be/internal/realtime"
)

type WSHandler struct {
	Hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{Hub: hub}
}

type wsInbound struct {
	Type   string   `json:"type"`
	Tables []string `json:"tables,omitempty"`
}

// ChangeFeed serves the realtime change feed. Clients send
// {"type":"subscribe","tables":["bookings",...]} and then receive one
// {table, action} event per committed mutation on a watched table.
func (h *WSHandler) ChangeFeed(c *websocket.Conn) {
	client := &realtime.Client{
		ID:   uuid.New().String(),
		Conn: realtime.NewWebSocketConn(c),
		Send: make(chan []byte, 256),
	}
	client.Subscribe(nil)

	h.Hub.RegisterClient(client)
	defer h.Hub.UnregisterClient(client)

	go func() {
		for msg := range client.Send {
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Println("ws write error:", err)
				return
			}
		}
	}()

	for {
		var in wsInbound
		if err := c.ReadJSON(&in); err != nil {
			break
		}

		switch in.Type {
		case "subscribe":
			client.Subscribe(in.Tables)
		case "pong":
			// keepalive, nothing to do
		}
	}
}
