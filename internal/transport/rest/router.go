package rest

import (
	"net/http"

	"github.com/heartmarshall/peritagem-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Inspections *InspectionHandler
	Intake      *IntakeHandler
	Profiles    *ProfileHandler
}

// NewRouter mounts all routes. loginLimit wraps POST /auth/login only.
// Everything except probes, register and login requires an authenticated user.
func NewRouter(h Handlers, loginLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.Handle("POST /auth/login", loginLimit(http.HandlerFunc(h.Auth.Login)))

	user := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireUser(fn))
	}

	user("GET /auth/me", h.Auth.Me)

	user("GET /inspections", h.Inspections.List)
	user("POST /inspections", h.Inspections.Create)
	user("GET /inspections/{id}", h.Inspections.Get)
	user("DELETE /inspections/{id}", h.Inspections.Delete)
	user("GET /inspections/{id}/timeline", h.Inspections.Timeline)
	user("GET /inspections/{id}/history", h.Inspections.History)
	user("POST /inspections/{id}/transitions/{action}", h.Inspections.Transition)

	user("GET /intake", h.Intake.List)
	user("POST /intake", h.Intake.Create)
	user("DELETE /intake/{id}", h.Intake.Delete)
	user("POST /intake/{id}/promote", h.Intake.Promote)

	user("GET /admin/profiles", h.Profiles.List)
	user("PATCH /admin/profiles/{id}", h.Profiles.Update)

	return mux
}
