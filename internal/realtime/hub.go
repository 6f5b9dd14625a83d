package realtime

import (
	"encoding/json"
	"log"
	"sync"
)

// ChangeEvent tells subscribers that rows in a table changed. It carries no
// delta; clients are expected to re-fetch the affected list.
type ChangeEvent struct {
	Table  string `json:"table"`
	Action string `json:"action"` // insert | update | delete
}

type Client struct {
	ID     string
	Tables map[string]bool
	Conn   *WebSocketConn
	Send   chan []byte

	mu sync.RWMutex
}

// Subscribe replaces the client's watched table set.
func (c *Client) Subscribe(tables []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Tables = make(map[string]bool, len(tables))
	for _, t := range tables {
		c.Tables[t] = true
	}
}

func (c *Client) watches(table string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Tables[table]
}

type Hub struct {
	clients    map[string]*Client
	notify     chan ChangeEvent
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		notify:     make(chan ChangeEvent, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// Notify queues a change event for every client subscribed to its table.
func (h *Hub) Notify(evt ChangeEvent) {
	select {
	case h.notify <- evt:
	default:
		log.Printf("realtime: notify queue full, dropped %s/%s", evt.Table, evt.Action)
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			log.Printf("realtime: client registered: %s", client.ID)

		case client := <-h.unregister:
			h.mu.Lock()
			if old, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(old.Send)
				log.Printf("realtime: client unregistered: %s", client.ID)
			}
			h.mu.Unlock()

		case evt := <-h.notify:
			payload, err := json.Marshal(evt)
			if err != nil {
				log.Printf("realtime: marshal change event: %v", err)
				continue
			}
			h.mu.Lock()
			for id, client := range h.clients {
				if !client.watches(evt.Table) {
					continue
				}
				select {
				case client.Send <- payload:
				default:
					close(client.Send)
					delete(h.clients, id)
				}
			}
			h.mu.Unlock()
		}
	}
}
