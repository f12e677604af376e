// Package realtime fans store change notifications out to dashboard clients.
package realtime

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"bioacoustic-monitor/internal/logger"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Message is sent to clients on every change; they refetch in full.
type Message struct {
	Type  string `json:"type"`
	Table string `json:"table"`
}

func Refresh(table string) Message {
	return Message{Type: "refresh", Table: table}
}

type subscriber struct {
	id uint64
	ch chan Message
}

// Hub is an in-process broadcast bus. A slow subscriber loses messages
// rather than blocking the others.
type Hub struct {
	subscribers sync.Map
	bufferSize  int
	nextID      atomic.Uint64
	upgrader    websocket.Upgrader
}

func NewHub(bufferSize int, allowedOrigins []string) *Hub {
	if bufferSize <= 0 {
		bufferSize = 16
	}
	h := &Hub{bufferSize: bufferSize}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

func originChecker(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

func (h *Hub) Broadcast(msg Message) {
	h.subscribers.Range(func(_, value interface{}) bool {
		sub := value.(*subscriber)
		select {
		case sub.ch <- msg:
		default:
		}
		return true
	})
}

// Subscribe returns a channel of messages and a cancel func that closes it.
func (h *Hub) Subscribe() (<-chan Message, func()) {
	sub := &subscriber{
		id: h.nextID.Add(1),
		ch: make(chan Message, h.bufferSize),
	}
	h.subscribers.Store(sub.id, sub)

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			if _, ok := h.subscribers.LoadAndDelete(sub.id); ok {
				close(sub.ch)
			}
		})
	}
}

func (h *Hub) Subscribers() int {
	n := 0
	h.subscribers.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// ServeHTTP upgrades the request and streams messages until the client
// goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	msgs, cancel := h.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go readPump(conn, done)

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}

// readPump drains client frames so pongs and close frames are processed.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
