package survey

import (
	"net/http"

	"github.com/SchoolPulse/SP-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	// Public dashboard routes
	r.Get("/summary", GetSummary)
	r.Get("/facilities", GetFacilities)
	r.Get("/fulfillment", GetFulfillment)
	r.Get("/rankings", GetRankings)
	r.Get("/schools", GetSchools)
	r.Get("/departments", GetDepartments)
	r.Get("/snapshots", GetSnapshots)

	// Admin routes
	r.With(middleware.AdminMiddleware).Post("/refresh", RefreshData)

	return r
}
