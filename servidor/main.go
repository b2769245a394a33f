// ShapeForge server: stores named shapes and streams them to websocket
// clients as wire-encoded interchange messages.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"ShapeForge/shared/config"
	"ShapeForge/shared/shapemsg"
	"ShapeForge/shared/shapeops"
	"ShapeForge/shared/shapestore"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub manages the active websocket connections.
type Hub struct {
	clients    map[*websocket.Conn]*sync.Mutex
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func newHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]*sync.Mutex),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = &sync.Mutex{}
			h.mu.Unlock()
			log.Printf("[Hub] client registered: %s", client.RemoteAddr())

		case client := <-h.unregister:
			h.mu.Lock()
			if lock, ok := h.clients[client]; ok {
				lock.Lock()
				delete(h.clients, client)
				client.Close()
				lock.Unlock()
				log.Printf("[Hub] client unregistered: %s", client.RemoteAddr())
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			// Snapshot the clients so the hub lock is not held while
			// writing to sockets.
			type clientEntry struct {
				conn *websocket.Conn
				lock *sync.Mutex
			}
			h.mu.Lock()
			var targets []clientEntry
			for c, l := range h.clients {
				targets = append(targets, clientEntry{c, l})
			}
			h.mu.Unlock()

			for _, target := range targets {
				target.lock.Lock()
				err := target.conn.WriteMessage(websocket.BinaryMessage, message)
				target.lock.Unlock()
				if err != nil {
					log.Printf("[Hub] send to %s failed: %v", target.conn.RemoteAddr(), err)
					target.conn.Close()
					h.mu.Lock()
					delete(h.clients, target.conn)
					h.mu.Unlock()
				}
			}
		}
	}
}

// BroadcastShape serializes the message union and fans it out to every
// connected client.
func (h *Hub) BroadcastShape(msg shapemsg.ShapeMsg) {
	data, err := shapemsg.Marshal(msg)
	if err != nil {
		log.Printf("[Hub] cannot serialize shape: %v", err)
		return
	}
	h.broadcast <- data
}

// Server wires the store and the hub into the HTTP handlers.
type Server struct {
	store *shapestore.Store
	hub   *Hub
}

// handleShape implements GET/PUT/DELETE of /shapes/{name}. Shapes travel in
// the text encoding; every stored update is also broadcast to websocket
// clients as a wire message.
func (s *Server) handleShape(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/shapes/")
	if name == "" {
		http.Error(w, "missing shape name", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		shape, err := s.store.Load(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		shapeops.SaveAsText(shape, w)

	case http.MethodPut, http.MethodPost:
		body, err := io.ReadAll(io.LimitReader(r.Body, 64<<20))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		shape := shapeops.NewShapeFromText(bytes.NewReader(body))
		if shape == nil {
			http.Error(w, "body does not decode as a shape", http.StatusBadRequest)
			return
		}
		if err := s.store.Save(name, shape); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if msg, err := shapeops.NewMessageFromShape(shape); err == nil {
			s.hub.BroadcastShape(msg)
		}
		w.WriteHeader(http.StatusNoContent)

	case http.MethodDelete:
		if err := s.store.Delete(name); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] upgrade failed: %v", err)
		return
	}
	s.hub.register <- conn

	// Reader goroutine: the server only pushes, so incoming frames are
	// drained until the client goes away.
	go func() {
		defer func() { s.hub.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	cfg := config.Load()

	store, err := shapestore.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}
	defer store.Close()

	hub := newHub()
	go hub.run()

	srv := &Server{store: store, hub: hub}
	http.HandleFunc("/shapes/", srv.handleShape)
	http.HandleFunc("/shapes", srv.handleList)
	http.HandleFunc("/ws", srv.handleWS)

	log.Printf("[Server] listening on %s (db %s)", cfg.ListenAddr, cfg.DatabasePath)
	if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
