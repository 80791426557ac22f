package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dukaforge/pantry/pkg/types"
)

// handlePing answers a static health envelope without touching the store.
func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, types.NewSuccess("Pong!", http.StatusOK, nil))
}

// handleList serves GET /cereals: the full table without query
// parameters, a filtered subset with them.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	if len(params) == 0 {
		s.writeResponse(w, s.store.ReadAll())
		return
	}
	s.writeResponse(w, s.store.FilterBy(types.BuildFilters(params)))
}

// handleCreateOrUpdate serves POST /cereals. A body without an id creates;
// a body carrying an id updates the existing row or 404s.
func (s *Server) handleCreateOrUpdate(w http.ResponseWriter, r *http.Request) {
	body, errResp := s.gate(r)
	if errResp != nil {
		s.writeResponse(w, errResp)
		return
	}

	cereal, err := types.CerealFromMap(body)
	if err != nil {
		s.writeResponse(w, types.NewError(err.Error(), http.StatusBadRequest, ""))
		return
	}

	if cereal.ID == 0 {
		s.writeResponse(w, s.store.Create(cereal))
		return
	}
	if !s.store.Exists(cereal.ID) {
		s.writeResponse(w, types.NewError("not found", http.StatusNotFound, ""))
		return
	}
	s.writeResponse(w, s.store.Update(cereal.ID, cereal))
}

// handleGet serves GET /cereals/{id}.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, errResp := pathID(r)
	if errResp != nil {
		s.writeResponse(w, errResp)
		return
	}
	if !s.store.Exists(id) {
		s.writeResponse(w, types.NewError("not found", http.StatusNotFound, ""))
		return
	}
	s.writeResponse(w, s.store.ReadByID(id))
}

// handleUpdate serves POST /cereals/{id}. The path id is authoritative;
// any id in the body is ignored.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	body, errResp := s.gate(r)
	if errResp != nil {
		s.writeResponse(w, errResp)
		return
	}

	id, errResp := pathID(r)
	if errResp != nil {
		s.writeResponse(w, errResp)
		return
	}

	cereal, err := types.CerealFromMap(body)
	if err != nil {
		s.writeResponse(w, types.NewError(err.Error(), http.StatusBadRequest, ""))
		return
	}

	if !s.store.Exists(id) {
		s.writeResponse(w, types.NewError("not found", http.StatusNotFound, ""))
		return
	}
	s.writeResponse(w, s.store.Update(id, cereal))
}

// handleDelete serves DELETE /cereals/{id}. The store itself answers 404
// for a missing row.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	_, errResp := s.gate(r)
	if errResp != nil {
		s.writeResponse(w, errResp)
		return
	}

	id, errResp := pathID(r)
	if errResp != nil {
		s.writeResponse(w, errResp)
		return
	}
	s.writeResponse(w, s.store.Delete(id))
}

// pathID parses the {id} path segment. Non-numeric ids cannot name a row,
// so they answer 404.
func pathID(r *http.Request) (int64, *types.Response) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, types.NewError("not found", http.StatusNotFound, "")
	}
	return id, nil
}
