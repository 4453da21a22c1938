package diagnostics

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Broadcaster fans a fault report out to every connected diagnostics
// client, generalizing the teacher's WebSocketBroadcast (server ->
// fan-out-to-clients) down to the one event this core has worth
// streaming: Throw's fatal report. It is entirely optional; a process
// that never calls SetBroadcaster never imports net/http at runtime in
// any observable way.
type Broadcaster struct {
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	clients  map[*websocket.Conn]bool
}

// NewBroadcaster builds an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP upgrades r into a websocket connection and registers it as
// a diagnostics listener until it disconnects.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	b.mu.Lock()
	b.clients[conn] = true
	b.mu.Unlock()

	go func() {
		defer func() {
			b.mu.Lock()
			delete(b.clients, conn)
			b.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast pushes report to every connected client, dropping and
// unregistering any connection that errors on write.
func (b *Broadcaster) Broadcast(report string) {
	b.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(b.clients))
	for c := range b.clients {
		conns = append(conns, c)
	}
	b.mu.RUnlock()

	var dead []*websocket.Conn
	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, []byte(report)); err != nil {
			dead = append(dead, c)
		}
	}

	if len(dead) == 0 {
		return
	}

	b.mu.Lock()
	for _, c := range dead {
		delete(b.clients, c)
	}
	b.mu.Unlock()
}
