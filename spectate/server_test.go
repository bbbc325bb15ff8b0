package spectate

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/shooter-snake/engine"
	"github.com/lixenwraith/shooter-snake/parameter"
	"github.com/lixenwraith/shooter-snake/status"
)

func publishedServer(t *testing.T) (*Server, *Publisher, *status.Registry) {
	t.Helper()
	reg := status.NewRegistry()
	round := engine.NewRound(parameter.DefaultRules(), 7, nil, reg)
	round.Start()
	pub := NewPublisher()
	pub.Publish(round.Snapshot())
	return NewServer(Config{Interval: 10 * time.Millisecond}, pub, reg), pub, reg
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSnapshot_NotPublished(t *testing.T) {
	s := NewServer(Config{}, NewPublisher(), nil)
	rec := get(t, s.Handler(), "/snapshot")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", rec.Code)
	}
	rec = get(t, s.Handler(), "/frame.png")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 for frame, got %d", rec.Code)
	}
}

func TestSnapshot_JSON(t *testing.T) {
	s, _, _ := publishedServer(t)
	rec := get(t, s.Handler(), "/snapshot")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var snap engine.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("Expected valid JSON: %v", err)
	}
	if snap.State != "running" || len(snap.Player.Body) != 3 {
		t.Errorf("Expected running round with length 3, got %q %d", snap.State, len(snap.Player.Body))
	}
}

func TestSnapshot_Msgpack(t *testing.T) {
	s, _, _ := publishedServer(t)
	rec := get(t, s.Handler(), "/snapshot?format=msgpack")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != msgpackContentType {
		t.Errorf("Expected %s, got %s", msgpackContentType, ct)
	}
	var snap engine.Snapshot
	if err := msgpack.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("Expected valid msgpack: %v", err)
	}
	if snap.Cols != parameter.DefaultRules().Cols {
		t.Errorf("Expected %d cols, got %d", parameter.DefaultRules().Cols, snap.Cols)
	}
}

func TestSnapshot_BadFormat(t *testing.T) {
	s, _, _ := publishedServer(t)
	rec := get(t, s.Handler(), "/snapshot?format=xml")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestFrame_PNG(t *testing.T) {
	s, _, _ := publishedServer(t)
	rec := get(t, s.Handler(), "/frame.png?scale=0.5")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("Expected PNG: %v", err)
	}
	rules := parameter.DefaultRules()
	if w := img.Bounds().Dx(); w != rules.Cols*rules.CellSize/2 {
		t.Errorf("Expected width %d, got %d", rules.Cols*rules.CellSize/2, w)
	}

	for _, q := range []string{"scale=abc", "scale=99"} {
		if rec := get(t, s.Handler(), "/frame.png?"+q); rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for %s, got %d", q, rec.Code)
		}
	}
}

func TestStatus(t *testing.T) {
	s, _, _ := publishedServer(t)
	rec := get(t, s.Handler(), "/status")
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("Expected JSON: %v", err)
	}
	if _, ok := out[status.PlayerLength]; !ok {
		t.Errorf("Expected %s in status, got %v", status.PlayerLength, out)
	}
	if _, ok := out[status.SpectatorClients]; !ok {
		t.Errorf("Expected %s in status", status.SpectatorClients)
	}
}

func TestWebSocket_ReceivesSnapshot(t *testing.T) {
	s, pub, reg := publishedServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer ws.Close()

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	msgType, data, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("Expected initial snapshot: %v", err)
	}
	if msgType != websocket.TextMessage {
		t.Errorf("Expected text frame, got %d", msgType)
	}
	var snap engine.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("Expected JSON snapshot: %v", err)
	}
	if got := reg.Ints.Get(status.SpectatorClients).Load(); got != 1 {
		t.Errorf("Expected 1 spectator, got %d", got)
	}

	// A newer version goes out on the next broadcast
	next := snap
	next.Tick = 99
	pub.Publish(next)
	_, v1, _ := pub.Latest()
	if sent := s.broadcast(0); sent != v1 {
		t.Errorf("Expected broadcast of version %d, got %d", v1, sent)
	}
	_, data, err = ws.ReadMessage()
	if err != nil {
		t.Fatalf("Expected broadcast: %v", err)
	}
	if err := json.Unmarshal(data, &snap); err != nil || snap.Tick != 99 {
		t.Errorf("Expected tick 99, got %d (%v)", snap.Tick, err)
	}
}

func TestWebSocket_MsgpackBinary(t *testing.T) {
	s, _, _ := publishedServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?format=msgpack"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer ws.Close()

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	msgType, data, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("Expected initial snapshot: %v", err)
	}
	if msgType != websocket.BinaryMessage {
		t.Errorf("Expected binary frame, got %d", msgType)
	}
	var snap engine.Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		t.Errorf("Expected msgpack snapshot: %v", err)
	}
}

func TestServer_StartShutdown(t *testing.T) {
	s, _, _ := publishedServer(t)
	s.cfg.Addr = "127.0.0.1:0"
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, err := s.Start(ctx)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	resp, err := http.Get("http://" + addr.String() + "/status")
	if err != nil {
		t.Fatalf("Expected live listener: %v", err)
	}
	resp.Body.Close()

	if err := s.Shutdown(context.Background()); err != nil {
		t.Errorf("Expected clean shutdown, got %v", err)
	}
	if err := s.Shutdown(context.Background()); err != ErrServerClosed {
		t.Errorf("Expected ErrServerClosed, got %v", err)
	}
	if _, err := s.Start(ctx); err != ErrServerClosed {
		t.Errorf("Expected ErrServerClosed on restart, got %v", err)
	}
}
