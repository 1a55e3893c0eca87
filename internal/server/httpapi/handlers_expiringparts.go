package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
)

func (s *HTTPServer) handleExpiringPartCreate(w http.ResponseWriter, r *http.Request) {
	var part models.ExpiringPart
	if err := json.NewDecoder(r.Body).Decode(&part); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	created, err := s.expiringParts.Create(r.Context(), &part)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *HTTPServer) handleExpiringPartGet(w http.ResponseWriter, r *http.Request) {
	part, err := s.expiringParts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, part)
}

func (s *HTTPServer) handleExpiringPartList(w http.ResponseWriter, r *http.Request) {
	parts, err := s.expiringParts.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if parts == nil {
		parts = []*models.ExpiringPart{}
	}
	writeJSON(w, http.StatusOK, parts)
}

func (s *HTTPServer) handleExpiringPartUpdate(w http.ResponseWriter, r *http.Request) {
	var part models.ExpiringPart
	if err := json.NewDecoder(r.Body).Decode(&part); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	part.ID = chi.URLParam(r, "id")

	updated, err := s.expiringParts.Update(r.Context(), &part)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *HTTPServer) handleExpiringPartReplace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.expiringParts.MarkReplaced(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	part, err := s.expiringParts.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, part)
}

func (s *HTTPServer) handleExpiringPartDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.expiringParts.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
