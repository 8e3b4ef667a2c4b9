// Package spectate streams live game snapshots to WebSocket viewers.
//
// A Hub fans each published value out to every connected viewer as a JSON
// envelope. Slow viewers drop frames instead of stalling the game loop.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	// DefaultPingInterval is how often idle viewers are pinged.
	DefaultPingInterval = 5 * time.Second

	writeWait  = 2 * time.Second
	sendBuffer = 16
)

// Message is the envelope sent to viewers.
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type viewer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks viewers and broadcasts to them. It is safe for concurrent use.
type Hub struct {
	upgrader     websocket.Upgrader
	logger       *log.Logger
	pingInterval time.Duration

	mu      sync.Mutex
	viewers map[*viewer]struct{}
	last    []byte
	closed  bool
}

// NewHub creates a hub. A nil logger discards output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger:       logger.WithPrefix("spectate"),
		pingInterval: DefaultPingInterval,
		viewers:      make(map[*viewer]struct{}),
	}
}

// Publish sends v to every viewer as a message of type typ. The latest
// message is replayed to viewers that join later.
func (h *Hub) Publish(typ string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("spectate: encode %s: %w", typ, err)
	}
	msg, err := json.Marshal(Message{Type: typ, Data: data})
	if err != nil {
		return fmt.Errorf("spectate: encode envelope: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.last = msg
	for vw := range h.viewers {
		select {
		case vw.send <- msg:
		default:
			// Viewer is behind; it will catch up on the next frame.
		}
	}
	return nil
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.viewers)
}

// ServeHTTP upgrades the request and streams messages until the viewer
// disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	vw := &viewer{conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.add(vw) {
		conn.Close()
		return
	}
	h.logger.Info("viewer joined", "remote", conn.RemoteAddr().String())

	done := make(chan struct{})
	go h.readLoop(vw, done)
	h.writeLoop(vw, done)

	h.remove(vw)
	conn.Close()
	h.logger.Info("viewer left", "remote", conn.RemoteAddr().String())
}

func (h *Hub) add(vw *viewer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	if h.last != nil {
		vw.send <- h.last
	}
	h.viewers[vw] = struct{}{}
	return true
}

func (h *Hub) remove(vw *viewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.viewers, vw)
}

// readLoop discards viewer input and reports when the connection ends.
func (h *Hub) readLoop(vw *viewer, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := vw.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(vw *viewer, done <-chan struct{}) {
	ping := time.NewTicker(h.pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-done:
			return
		case msg, ok := <-vw.send:
			if !ok {
				_ = vw.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server closing"),
					time.Now().Add(writeWait))
				return
			}
			_ = vw.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := vw.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ping.C:
			if err := vw.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// Close disconnects every viewer and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for vw := range h.viewers {
		close(vw.send)
		delete(h.viewers, vw)
	}
}

// Handler returns the HTTP routes: /ws for viewers and /healthz.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Serve listens on addr until ctx is done, then closes the hub.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("spectate: listen %s: %w", addr, err)
	}
	return h.ServeListener(ctx, ln)
}

// ServeListener is Serve on an existing listener.
func (h *Hub) ServeListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		h.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	h.logger.Info("spectator feed listening", "address", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("spectate: serve: %w", err)
	}
	return nil
}
