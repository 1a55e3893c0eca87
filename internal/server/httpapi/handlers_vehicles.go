package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/fleetkeeper/internal/server/models"
)

func (s *HTTPServer) handleVehicleCreate(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	created, err := s.vehicles.Create(r.Context(), &vehicle)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *HTTPServer) handleVehicleGet(w http.ResponseWriter, r *http.Request) {
	vehicle, err := s.vehicles.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (s *HTTPServer) handleVehicleList(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.vehicles.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []*models.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (s *HTTPServer) handleVehicleUpdate(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	vehicle.ID = chi.URLParam(r, "id")

	updated, err := s.vehicles.Update(r.Context(), &vehicle)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *HTTPServer) handleVehicleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.vehicles.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
