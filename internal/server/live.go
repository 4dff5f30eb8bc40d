package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/mahmoudabadi/portfolio/internal/session"
)

// liveMessage is the outgoing WebSocket message format.
type liveMessage struct {
	Type  string         `json:"type"` // "patch" or "error"
	Patch *session.Patch `json:"patch,omitempty"`
	Error string         `json:"error,omitempty"`
}

func (s *Server) upgrader() websocket.Upgrader {
	return websocket.Upgrader{CheckOrigin: s.checkOrigin}
}

// checkOrigin admits same-host origins and those matching AllowedOrigins.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || s.cfg.AllowAll {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Host == r.Host {
		return true
	}
	for _, pattern := range s.cfg.AllowedOrigins {
		if ok, _ := path.Match(pattern, origin); ok {
			return true
		}
	}
	return false
}

// handleLive carries events and patches for one session over a WebSocket.
// Closing the connection detaches the session; it stays reachable over POST
// until the idle sweep evicts it.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	up := s.upgrader()
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live: websocket upgrade: %v", err)
		return
	}
	release := sess.Attach()
	defer func() {
		release()
		conn.Close()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("live: websocket read: %v", err)
			}
			return
		}

		var ev session.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			s.send(conn, liveMessage{Type: "error", Error: "invalid message format"})
			continue
		}

		patch, err := sess.Apply(ev)
		if err != nil {
			if !errors.Is(err, session.ErrInvalidEvent) {
				log.Printf("live: applying event: %v", err)
			}
			s.send(conn, liveMessage{Type: "error", Error: err.Error()})
			continue
		}
		s.send(conn, liveMessage{Type: "patch", Patch: &patch})
	}
}

func (s *Server) send(conn *websocket.Conn, msg liveMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("live: websocket write: %v", err)
	}
}
