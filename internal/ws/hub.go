package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// CommitmentEvent is pushed to every connected dashboard when a
// commitment lands, so clients re-render from fresh numbers instead of
// polling.
type CommitmentEvent struct {
	Type              string `json:"type"` // always "commitment_created"
	ProductID         string `json:"productId"`
	Description       string `json:"description"`
	Quantity          int    `json:"quantity"`
	CommittedQuantity int    `json:"committedQuantity"`
	UserID            string `json:"userId"`
	UserName          string `json:"userName"`
}

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
	}
}

// BroadcastCommitment marshals and queues a commitment event. Safe to
// call from any goroutine; a nil hub is a no-op so services stay
// testable without a running hub.
func (h *Hub) BroadcastCommitment(ev CommitmentEvent) {
	if h == nil {
		return
	}
	ev.Type = "commitment_created"
	msg, err := json.Marshal(ev)
	if err != nil {
		return
	}
	h.Broadcast <- msg
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
