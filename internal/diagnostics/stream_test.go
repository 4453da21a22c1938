package diagnostics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestBroadcasterDeliversToConnectedClient(t *testing.T) {
	b := NewBroadcaster()
	server := httptest.NewServer(b)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Give ServeHTTP's registration goroutine a moment to record the
	// connection before the first broadcast, matching the async
	// upgrade-then-register shape Broadcast relies on.
	deadline := time.Now().Add(time.Second)
	for {
		b.mu.RLock()
		n := len(b.clients)
		b.mu.RUnlock()
		if n > 0 || time.Now().After(deadline) {
			break
		}
		time.Sleep(time.Millisecond)
	}

	b.Broadcast("IndexError at demo:1:6\n  [E901] list index out of range\n")

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if !strings.Contains(string(msg), "E901") {
		t.Fatalf("expected broadcast report to reach the client, got %q", msg)
	}
}
