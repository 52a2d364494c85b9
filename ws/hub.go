package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"food-ordering-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Message is the envelope pushed to connected clients.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Hub fans order events out to every connected websocket client. Delivery is
// best-effort: a failed write drops the client and never fails the request
// that triggered the event.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle upgrades the request and keeps the connection registered until the
// client goes away.
func (h *Hub) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("websocket upgrade failed:", err)
			return
		}
		defer conn.Close()

		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				break
			}
		}
	}
}

// NotifyOrderPlaced announces a newly created order.
func (h *Hub) NotifyOrderPlaced(order models.Order) {
	h.broadcast(Message{Event: "newOrder", Payload: order})
}

// NotifyOrderStatus announces an order status change.
func (h *Hub) NotifyOrderStatus(order models.Order) {
	h.broadcast(Message{Event: "orderStatus", Payload: order})
}

func (h *Hub) broadcast(message Message) {
	payload, err := json.Marshal(message)
	if err != nil {
		log.Println("error marshaling websocket message:", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, payload); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}
