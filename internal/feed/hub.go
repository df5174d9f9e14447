// Package feed транслирует события симуляции наружу по websocket.
// Клиенты только читают: входящие сообщения игнорируются.
package feed

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"go-lone-tower/internal/event"

	"github.com/gorilla/websocket"
)

// sendBuffer — сколько сообщений копится для медленного клиента, прежде чем
// новые начнут отбрасываться.
const sendBuffer = 256

// Message — конверт одного события в ленте.
type Message struct {
	Run  string          `json:"run"`
	Seq  uint64          `json:"seq"`
	Type event.EventType `json:"type"`
	Data interface{}     `json:"data,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub — подписчик диспетчера, рассылающий события всем подключенным клиентам.
// OnEvent никогда не блокирует игровой цикл.
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	run      string
	seq      uint64
	dropped  uint64
	closed   bool
	upgrader websocket.Upgrader
}

func NewHub(runID string) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		run:     runID,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// SetRun меняет идентификатор забега, например после перезапуска сцены.
func (h *Hub) SetRun(runID string) {
	h.mu.Lock()
	h.run = runID
	h.seq = 0
	h.mu.Unlock()
}

// OnEvent реализует event.Listener.
func (h *Hub) OnEvent(e event.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || len(h.clients) == 0 {
		return
	}
	h.seq++
	out, err := json.Marshal(Message{Run: h.run, Seq: h.seq, Type: e.Type, Data: e.Data})
	if err != nil {
		log.Printf("Feed: marshal %s: %v", e.Type, err)
		return
	}
	for c := range h.clients {
		select {
		case c.send <- out:
		default:
			h.dropped++
		}
	}
}

// ServeHTTP переводит соединение на websocket и держит его до отключения.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Feed: upgrade:", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	go c.writer()
	c.reader(h)
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many messages were discarded for slow clients.
func (h *Hub) Dropped() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Close отключает всех клиентов. Новые подключения сразу закрываются.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (c *client) reader(h *Hub) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writer() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
