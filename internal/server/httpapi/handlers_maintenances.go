package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
)

func (s *HTTPServer) handleMaintenanceCreate(w http.ResponseWriter, r *http.Request) {
	var maintenance models.Maintenance
	if err := json.NewDecoder(r.Body).Decode(&maintenance); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	created, err := s.maintenances.Create(r.Context(), &maintenance)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *HTTPServer) handleMaintenanceGet(w http.ResponseWriter, r *http.Request) {
	maintenance, err := s.maintenances.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, maintenance)
}

func (s *HTTPServer) handleMaintenanceList(w http.ResponseWriter, r *http.Request) {
	maintenances, err := s.maintenances.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if maintenances == nil {
		maintenances = []*models.Maintenance{}
	}
	writeJSON(w, http.StatusOK, maintenances)
}

func (s *HTTPServer) handleMaintenanceUpdate(w http.ResponseWriter, r *http.Request) {
	var maintenance models.Maintenance
	if err := json.NewDecoder(r.Body).Decode(&maintenance); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	maintenance.ID = chi.URLParam(r, "id")

	updated, err := s.maintenances.Update(r.Context(), &maintenance)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *HTTPServer) handleMaintenanceDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.maintenances.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
