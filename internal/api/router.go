package api

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"go-process-dashboard/internal/api/handler"
)

// NewRouter wires the dashboard query interface.
func NewRouter(d *handler.Dashboard) chi.Router {
	r := chi.NewRouter()
	r.Use(RequestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", d.Health)
		r.Get("/dashboard", d.GetDashboard)
		r.Get("/records", d.GetRecords)
		r.Get("/options", d.GetOptions)
		r.Get("/export", d.ExportXLSX)
		r.Get("/export/pdf", d.ExportPDF)
		r.Post("/reload", d.Reload)
		r.Get("/loads", d.ListLoads)
		r.Get("/loads/{id}/errors", d.GetLoadErrors)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
