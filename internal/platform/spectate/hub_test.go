package spectate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

type frame struct {
	Tick  int `json:"tick"`
	Score int `json:"score"`
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) (Message, frame) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var f frame
	if err := json.Unmarshal(msg.Data, &f); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	return msg, f
}

func waitViewers(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Viewers() != n {
		if time.Now().After(deadline) {
			t.Fatalf("viewers = %d, expected %d", h.Viewers(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubBroadcast(t *testing.T) {
	h := NewHub(nil)
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()
	defer h.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	waitViewers(t, h, 2)

	if err := h.Publish("snapshot", frame{Tick: 7, Score: 3}); err != nil {
		t.Fatalf("Publish() failed: %v", err)
	}

	for _, conn := range []*websocket.Conn{a, b} {
		msg, f := readMessage(t, conn)
		if msg.Type != "snapshot" {
			t.Errorf("type = %q, expected snapshot", msg.Type)
		}
		if f.Tick != 7 || f.Score != 3 {
			t.Errorf("frame = %+v", f)
		}
	}
}

func TestHubReplaysLatestToNewViewer(t *testing.T) {
	h := NewHub(nil)
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()
	defer h.Close()

	h.Publish("snapshot", frame{Tick: 1})
	h.Publish("snapshot", frame{Tick: 2})

	conn := dial(t, srv)
	if _, f := readMessage(t, conn); f.Tick != 2 {
		t.Errorf("replayed tick = %d, expected the latest 2", f.Tick)
	}
}

func TestHubDropsLeavingViewer(t *testing.T) {
	h := NewHub(nil)
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()
	defer h.Close()

	conn := dial(t, srv)
	waitViewers(t, h, 1)

	conn.Close()
	waitViewers(t, h, 0)
}

func TestHubClose(t *testing.T) {
	h := NewHub(nil)
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	waitViewers(t, h, 1)

	h.Close()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Errorf("read after close = %v, expected a going-away close", err)
	}

	if err := h.Publish("snapshot", frame{}); err != nil {
		t.Errorf("Publish() after Close = %v, expected a silent no-op", err)
	}
	if h.Viewers() != 0 {
		t.Error("closed hub should have no viewers")
	}
}

func TestHealthz(t *testing.T) {
	h := NewHub(nil)
	srv := httptest.NewServer(h.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
