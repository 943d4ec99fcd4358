// Package realtime streams seat updates of a showtime to websocket subscribers.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/metinatakli/cinex/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 64
)

const MessageTypeSeatUpdate = "seatUpdate"

var ErrHubBusy = errors.New("seat update dropped, hub buffer is full")

// Message is the frame written to subscribers.
type Message struct {
	Type string `json:"type"`
	domain.SeatUpdate
	Timestamp int64 `json:"timestamp"`
}

type client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	showtimeID int
}

// Hub fans seat updates out to the websocket clients of each showtime. It implements
// domain.SeatBroadcaster for single-instance deployments; with Redis the updates arrive
// through Relay instead.
type Hub struct {
	clients    map[int]map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan domain.SeatUpdate
	done       chan struct{}
	mu         sync.RWMutex
	upgrader   websocket.Upgrader
	logger     *slog.Logger
}

// NewHub accepts websocket handshakes from the same origin and from allowedOrigins.
// A "*" entry accepts every origin.
func NewHub(logger *slog.Logger, allowedOrigins []string) *Hub {
	return &Hub{
		clients:    make(map[int]map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan domain.SeatUpdate, 256),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

// originChecker returns nil for an empty list, which leaves gorilla's same-origin check in place.
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}

	if slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}

		for _, o := range allowed {
			if strings.EqualFold(strings.TrimSuffix(o, "/"), origin) {
				return true
			}
		}

		u, err := url.Parse(origin)
		if err != nil {
			return false
		}

		return strings.EqualFold(u.Host, r.Host)
	}
}

// Run dispatches registrations and updates until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case c := <-h.register:
			h.mu.Lock()
			if h.clients[c.showtimeID] == nil {
				h.clients[c.showtimeID] = make(map[*client]bool)
			}
			h.clients[c.showtimeID][c] = true
			count := len(h.clients[c.showtimeID])
			h.mu.Unlock()

			h.logger.Debug("seat subscriber registered", "showtime_id", c.showtimeID, "subscribers", count)

		case c := <-h.unregister:
			h.remove(c)

		case update := <-h.broadcast:
			h.dispatch(update)
		}
	}
}

// Publish queues update for delivery without blocking the caller.
func (h *Hub) Publish(_ context.Context, update domain.SeatUpdate) error {
	select {
	case h.broadcast <- update:
		return nil
	default:
		return ErrHubBusy
	}
}

func (h *Hub) dispatch(update domain.SeatUpdate) {
	data, err := json.Marshal(Message{
		Type:       MessageTypeSeatUpdate,
		SeatUpdate: update,
		Timestamp:  time.Now().UnixMilli(),
	})
	if err != nil {
		h.logger.Error("failed to marshal seat update", "error", err)
		return
	}

	h.mu.RLock()
	var slow []*client
	for c := range h.clients[update.ShowtimeID] {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("dropping slow seat subscriber", "showtime_id", c.showtimeID)
		h.remove(c)
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[c.showtimeID]
	if !ok || !clients[c] {
		return
	}

	delete(clients, c)
	close(c.send)

	if len(clients) == 0 {
		delete(h.clients, c.showtimeID)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, clients := range h.clients {
		for c := range clients {
			close(c.send)
		}
		delete(h.clients, id)
	}
}

func (h *Hub) ClientCount(showtimeID int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[showtimeID])
}

// Subscribe upgrades the request and streams the updates of showtimeID to it until the
// connection closes.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, showtimeID int) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{
		hub:        h,
		conn:       conn,
		send:       make(chan []byte, sendBufferSize),
		showtimeID: showtimeID,
	}

	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return errors.New("seat update hub is stopped")
	}

	go c.writePump()
	go c.readPump()

	return nil
}

// readPump only exists to process pongs and notice when the peer goes away.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
