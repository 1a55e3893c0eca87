package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
)

func (s *HTTPServer) handleComponentCreate(w http.ResponseWriter, r *http.Request) {
	var component models.Component
	if err := json.NewDecoder(r.Body).Decode(&component); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	created, err := s.components.Create(r.Context(), &component)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *HTTPServer) handleComponentGet(w http.ResponseWriter, r *http.Request) {
	component, err := s.components.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, component)
}

func (s *HTTPServer) handleComponentList(w http.ResponseWriter, r *http.Request) {
	components, err := s.components.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if components == nil {
		components = []*models.Component{}
	}
	writeJSON(w, http.StatusOK, components)
}

func (s *HTTPServer) handleComponentUpdate(w http.ResponseWriter, r *http.Request) {
	var component models.Component
	if err := json.NewDecoder(r.Body).Decode(&component); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	component.ID = chi.URLParam(r, "id")

	updated, err := s.components.Update(r.Context(), &component)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *HTTPServer) handleComponentDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.components.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
