// Package network streams frames to websocket clients and turns their commands into game events
package network

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/lightbeam/event"
	"github.com/lixenwraith/lightbeam/status"
)

// ErrNotRunning is returned when stopping a hub that was never started
var ErrNotRunning = errors.New("hub not running")

// Hub accepts websocket clients, fans frames out and forwards commands to the event queue
type Hub struct {
	config   *Config
	upgrader websocket.Upgrader
	peers    *PeerManager
	queue    *event.EventQueue

	clients *atomic.Int64

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	running  atomic.Bool
	wg       sync.WaitGroup
}

// NewHub creates a hub that pushes client commands into queue
// A nil cfg uses DefaultConfig
func NewHub(cfg *Config, queue *event.EventQueue, reg *status.Registry) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	h := &Hub{
		config: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		peers: NewPeerManager(cfg),
		queue: queue,
	}
	if reg != nil {
		h.clients = reg.Ints.Get(status.KeyClients)
	} else {
		h.clients = &atomic.Int64{}
	}
	h.peers.SetHandlers(h.onConnect, h.onDisconnect, h.onMessage)
	return h
}

// ServeHTTP upgrades the request and registers the client
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("network: upgrade %s: %v", r.RemoteAddr, err)
		return
	}
	if _, err := h.peers.AddConnection(conn); err != nil {
		log.Printf("network: reject %s: %v", r.RemoteAddr, err)
	}
}

// Start listens on the configured address and serves the websocket endpoint
func (h *Hub) Start() error {
	if !h.running.CompareAndSwap(false, true) {
		return nil
	}

	ln, err := net.Listen("tcp", h.config.Address)
	if err != nil {
		h.running.Store(false)
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(h.config.Path, h)

	h.mu.Lock()
	h.listener = ln
	h.server = &http.Server{Handler: mux}
	server := h.server
	h.mu.Unlock()

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("network: serve: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound listener address, nil before Start
func (h *Hub) Addr() net.Addr {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listener == nil {
		return nil
	}
	return h.listener.Addr()
}

// Stop closes every client and the listener
func (h *Hub) Stop(ctx context.Context) error {
	if !h.running.CompareAndSwap(true, false) {
		return ErrNotRunning
	}

	h.peers.Close()

	h.mu.Lock()
	server := h.server
	h.mu.Unlock()

	err := server.Shutdown(ctx)
	h.wg.Wait()
	return err
}

// Broadcast queues an encoded frame to every client
func (h *Hub) Broadcast(data []byte) {
	h.peers.Broadcast(data)
}

// PeerCount returns connected client count
func (h *Hub) PeerCount() int {
	return h.peers.PeerCount()
}

// IsRunning returns true while the listener is serving
func (h *Hub) IsRunning() bool {
	return h.running.Load()
}

func (h *Hub) onConnect(id PeerID) {
	h.clients.Store(int64(h.peers.PeerCount()))
	log.Printf("network: peer %d connected", id)
}

func (h *Hub) onDisconnect(id PeerID) {
	h.clients.Store(int64(h.peers.PeerCount()))
	log.Printf("network: peer %d disconnected", id)
}

func (h *Hub) onMessage(id PeerID, data []byte) {
	if h.queue == nil {
		return
	}
	eventType, payload, err := ParseCommand(data)
	if err != nil {
		log.Printf("network: peer %d: %v", id, err)
		return
	}
	h.queue.Push(event.GameEvent{Type: eventType, Payload: payload})
}
