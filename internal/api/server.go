// Package api exposes the cereal store over HTTP. The dispatcher wires
// each route through the gate (mutations only), record parsing, the store
// call, and the envelope response.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dukaforge/pantry/internal/sqlite"
	"github.com/dukaforge/pantry/pkg/types"
)

// Server holds the handler dependencies: the persistence client, the
// shared secret for the gate, and the request logger.
type Server struct {
	store  *sqlite.Store
	secret string
	log    *zap.Logger
}

// NewServer returns a Server backed by the given store.
func NewServer(store *sqlite.Store, secret string, log *zap.Logger) *Server {
	return &Server{store: store, secret: secret, log: log}
}

// Router builds the route table. GET routes are never gated; POST and
// DELETE pass through the gate inside their handlers.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/ping", s.handlePing)
	r.Route("/cereals", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreateOrUpdate)
		r.Get("/{id}", s.handleGet)
		r.Post("/{id}", s.handleUpdate)
		r.Delete("/{id}", s.handleDelete)
	})
	return r
}

// writeResponse serializes an envelope. The envelope's StatusCode is also
// the HTTP status.
func (s *Server) writeResponse(w http.ResponseWriter, resp *types.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error("writing response", zap.Error(err))
	}
}
