package obs

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Snapshot is the read-only view of engine state a spectator client
// receives. It mirrors what a host reads off *engine.Engine between Tick
// calls; obs never imports internal/engine directly so the driver builds
// this value itself.
type Snapshot struct {
	State        string `json:"state"`
	TotalTicks   int    `json:"totalTicks"`
	LinesCleared int    `json:"linesCleared"`
	BlocksPlaced int    `json:"blocksPlaced"`
	Finesse      int    `json:"finesse"`
	PieceType    string `json:"pieceType"`
	PieceX       int    `json:"pieceX"`
	PieceY       int    `json:"pieceY"`
	Theta        int    `json:"theta"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans a stream of Snapshot broadcasts out to every connected
// spectator websocket, grounded on the teacher's WebSocketHub
// register/unregister/broadcast channel loop, generalized from game
// events to engine snapshots.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}

	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn

	metrics *Metrics
}

// NewHub constructs a Hub; metrics may be nil to skip instrumentation.
func NewHub(metrics *Metrics) *Hub {
	h := &Hub{
		clients:    make(map[*websocket.Conn]struct{}),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		metrics:    metrics,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = struct{}{}
			count := len(h.clients)
			h.mu.Unlock()
			if h.metrics != nil {
				h.metrics.UpdateSpectatorConnections(count)
			}

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			count := len(h.clients)
			h.mu.Unlock()
			if h.metrics != nil {
				h.metrics.UpdateSpectatorConnections(count)
			}

		case msg := <-h.broadcast:
			h.mu.RLock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					conn.Close()
					go func(c *websocket.Conn) { h.unregister <- c }(conn)
				}
			}
			h.mu.RUnlock()
			if h.metrics != nil {
				h.metrics.IncrementSpectatorMessages()
			}
		}
	}
}

// Broadcast encodes snap and queues it for every connected client,
// dropping the send (rather than blocking the tick loop) if the outbound
// buffer is full.
func (h *Hub) Broadcast(snap Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	select {
	case h.broadcast <- data:
	default:
	}
}

// ServeHTTP upgrades an incoming request to a websocket connection and
// registers it with the hub.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	h.register <- conn

	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// ClientCount reports how many spectators are currently connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
