package spectate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestConn_SendTimesOutOnStalledPeer(t *testing.T) {
	old := writeTimeout
	writeTimeout = 50 * time.Millisecond
	defer func() { writeTimeout = old }()

	accepted := make(chan *websocket.Conn, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		accepted <- ws
	}))
	defer ts.Close()

	// The client never reads, so socket buffers eventually fill
	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer client.Close()

	var ws *websocket.Conn
	select {
	case ws = <-accepted:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected server side connection")
	}
	c := NewConn(ws, FormatMsgpack)
	defer c.Close()

	payload := make([]byte, 1<<20)
	start := time.Now()
	var sendErr error
	for i := 0; i < 256 && sendErr == nil; i++ {
		sendErr = c.Send(payload)
	}
	if sendErr == nil {
		t.Fatal("Expected send to a stalled peer to fail")
	}
	if elapsed := time.Since(start); elapsed > 10*time.Second {
		t.Errorf("Expected send to give up quickly, took %v", elapsed)
	}
}
