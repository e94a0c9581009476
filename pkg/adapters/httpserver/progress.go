package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// progressEvent is one search progress sample pushed to websocket
// subscribers.
type progressEvent struct {
	Event     string `json:"event"`
	PathCost  int    `json:"path_cost"`
	Heuristic int    `json:"heuristic"`
	FCost     int    `json:"f_cost"`
	UpdatedAt int64  `json:"updated_at_ms"`
}

// progressHub fans progress samples out to connected clients. Samples
// are throttled and dropped rather than ever blocking the search.
type progressHub struct {
	mu          sync.Mutex
	clients     map[*websocket.Conn]chan []byte
	lastPublish time.Time
	throttle    time.Duration
}

func newProgressHub() *progressHub {
	return &progressHub{
		clients:  make(map[*websocket.Conn]chan []byte),
		throttle: 100 * time.Millisecond,
	}
}

func (h *progressHub) publish(ev progressEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return
	}
	now := time.Now()
	if !h.lastPublish.IsZero() && now.Sub(h.lastPublish) < h.throttle {
		return
	}
	h.lastPublish = now
	ev.Event = "progress"
	ev.UpdatedAt = now.UnixMilli()
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	for _, send := range h.clients {
		select {
		case send <- payload:
		default:
			// Slow client; drop the sample.
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

func (h *progressHub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	send := make(chan []byte, 32)
	h.mu.Lock()
	h.clients[conn] = send
	h.mu.Unlock()

	go func() {
		for payload := range send {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				break
			}
		}
		conn.Close()
	}()

	// Reads are only used to detect the client going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	close(send)
}
