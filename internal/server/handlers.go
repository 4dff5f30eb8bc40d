package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mahmoudabadi/portfolio/internal/locale"
	"github.com/mahmoudabadi/portfolio/internal/session"
	"github.com/mahmoudabadi/portfolio/internal/view"
)

// localeSummary is one entry of the locale listing.
type localeSummary struct {
	Code      locale.Code      `json:"code"`
	Name      string           `json:"name"`
	Direction locale.Direction `json:"direction"`
	FontClass string           `json:"font_class"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Create(s.cfg.DefaultLanguage)

	var buf bytes.Buffer
	err := sess.View(func(ctrl *view.Controller) error {
		return s.renderer.Page(&buf, ctrl, sess.ID)
	})
	if err != nil {
		s.sessions.Remove(sess.ID)
		log.Printf("server: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

func (s *Server) handleLocales(w http.ResponseWriter, r *http.Request) {
	var out []localeSummary
	for _, l := range s.store.All() {
		out = append(out, localeSummary{
			Code:      l.Code,
			Name:      l.Code.NativeName(),
			Direction: l.Direction,
			FontClass: view.FontClass(l.Code),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLocale(w http.ResponseWriter, r *http.Request) {
	code, err := locale.ParseCode(chi.URLParam(r, "code"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	l, ok := s.store.Lookup(code)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "locale not loaded: " + string(code)})
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	var ev session.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	patch, err := sess.Apply(ev)
	if err != nil {
		writeJSON(w, applyStatus(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, patch)
}

func applyStatus(err error) int {
	if errors.Is(err, session.ErrInvalidEvent) {
		return http.StatusBadRequest
	}
	log.Printf("server: applying event: %v", err)
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
