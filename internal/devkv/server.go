// Package devkv emulates the cloud key-value endpoint for local development
// and tests: one JSON document per path, whole-document GET and PUT, JSON
// null for a document that was never written.
//
// The emulator intentionally mirrors the production endpoint's lack of
// guarantees: no authentication, no validation beyond "body must be JSON",
// no conditional writes. Never expose it beyond localhost.
package devkv

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Server holds documents in memory, keyed by request path.
type Server struct {
	mu   sync.RWMutex
	docs map[string][]byte
	log  zerolog.Logger
}

// NewServer creates an empty emulator.
func NewServer(log zerolog.Logger) *Server {
	return &Server{
		docs: make(map[string][]byte),
		log:  log,
	}
}

// Router returns the HTTP routes: GET and PUT on any path ending in .json.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.PathPrefix("/").Methods(http.MethodGet).HandlerFunc(s.handleGet)
	r.PathPrefix("/").Methods(http.MethodPut).HandlerFunc(s.handlePut)
	return r
}

// Handler adapts the server for httptest and http.ListenAndServe.
func (s *Server) Handler() http.Handler {
	return s.Router()
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	key, ok := docKey(r.URL.Path)
	if !ok {
		writeError(w, http.StatusNotFound, "document paths must end in .json")
		return
	}

	s.mu.RLock()
	doc, exists := s.docs[key]
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if !exists {
		// Absence is represented as a JSON null, same as the cloud store.
		_, _ = w.Write([]byte("null"))
		return
	}
	_, _ = w.Write(doc)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	key, ok := docKey(r.URL.Path)
	if !ok {
		writeError(w, http.StatusNotFound, "document paths must end in .json")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unreadable body")
		return
	}
	if !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "body must be valid JSON")
		return
	}

	s.mu.Lock()
	s.docs[key] = body
	s.mu.Unlock()

	s.log.Debug().Str("key", key).Int("bytes", len(body)).Msg("document replaced")
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// docKey strips the .json suffix and normalizes the document path.
func docKey(path string) (string, bool) {
	if !strings.HasSuffix(path, ".json") {
		return "", false
	}
	key := strings.TrimSuffix(path, ".json")
	key = strings.Trim(key, "/")
	return key, true
}
