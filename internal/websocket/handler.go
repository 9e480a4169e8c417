package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs registers one shell connection with the hub and pumps until it
// drops.
func ServeWs(hub *Hub, c *websocket.Conn, merchantID uuid.UUID) {
	client := &Client{Hub: hub, Conn: c, MerchantID: merchantID, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // runs in the handler goroutine
}
