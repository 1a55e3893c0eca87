package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/fleetkeeper/internal/server/auth"
)

func (s *HTTPServer) router() http.Handler {
	r := chi.NewRouter()

	// Public endpoints
	r.Get("/health", s.handleHealth)
	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	// Protected endpoints
	r.Group(func(api chi.Router) {
		api.Use(s.authenticate)

		api.Get("/api/me", s.handleMe)

		api.Route("/api/vehicles", func(r chi.Router) {
			r.With(requireOperation(auth.OpVehicleRead)).Get("/", s.handleVehicleList)
			r.With(requireOperation(auth.OpVehicleRead)).Get("/{id}", s.handleVehicleGet)
			r.With(requireOperation(auth.OpVehicleWrite)).Post("/", s.handleVehicleCreate)
			r.With(requireOperation(auth.OpVehicleWrite)).Put("/{id}", s.handleVehicleUpdate)
			r.With(requireOperation(auth.OpVehicleDelete)).Delete("/{id}", s.handleVehicleDelete)
		})

		api.Route("/api/components", func(r chi.Router) {
			r.With(requireOperation(auth.OpComponentRead)).Get("/", s.handleComponentList)
			r.With(requireOperation(auth.OpComponentRead)).Get("/{id}", s.handleComponentGet)
			r.With(requireOperation(auth.OpComponentWrite)).Post("/", s.handleComponentCreate)
			r.With(requireOperation(auth.OpComponentWrite)).Put("/{id}", s.handleComponentUpdate)
			r.With(requireOperation(auth.OpComponentDelete)).Delete("/{id}", s.handleComponentDelete)
		})

		api.Route("/api/maintenances", func(r chi.Router) {
			r.With(requireOperation(auth.OpMaintenanceRead)).Get("/", s.handleMaintenanceList)
			r.With(requireOperation(auth.OpMaintenanceRead)).Get("/{id}", s.handleMaintenanceGet)
			r.With(requireOperation(auth.OpMaintenanceWrite)).Post("/", s.handleMaintenanceCreate)
			r.With(requireOperation(auth.OpMaintenanceWrite)).Put("/{id}", s.handleMaintenanceUpdate)
			r.With(requireOperation(auth.OpMaintenanceDelete)).Delete("/{id}", s.handleMaintenanceDelete)
		})

		api.Route("/api/expiring-parts", func(r chi.Router) {
			r.With(requireOperation(auth.OpExpiringPartRead)).Get("/", s.handleExpiringPartList)
			r.With(requireOperation(auth.OpExpiringPartRead)).Get("/{id}", s.handleExpiringPartGet)
			r.With(requireOperation(auth.OpExpiringPartWrite)).Post("/", s.handleExpiringPartCreate)
			r.With(requireOperation(auth.OpExpiringPartWrite)).Put("/{id}", s.handleExpiringPartUpdate)
			r.With(requireOperation(auth.OpExpiringPartWrite)).Post("/{id}/replace", s.handleExpiringPartReplace)
			r.With(requireOperation(auth.OpExpiringPartDelete)).Delete("/{id}", s.handleExpiringPartDelete)
		})
	})

	return r
}
