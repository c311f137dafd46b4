package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/altozano/altozano/internal/billing"
	"github.com/altozano/altozano/internal/catalog"
	"github.com/altozano/altozano/internal/reports"
	"github.com/altozano/altozano/internal/spending"
	"github.com/altozano/altozano/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	CatalogHandler  *catalog.Handler
	BillingHandler  *billing.Handler
	SpendingHandler *spending.Handler
	ReportsHandler  *reports.Handler
	JobsHandler     *jobs.Handler
}

// NewRouter constructs the chi.Router with Altozano defaults. Report
// endpoints mount at the root; entity CRUD mounts under /api.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	params.BillingHandler.MountRootRoutes(r)
	params.SpendingHandler.MountRootRoutes(r)
	params.ReportsHandler.MountRootRoutes(r)

	r.Route("/api", func(r chi.Router) {
		params.CatalogHandler.MountRoutes(r)
		params.BillingHandler.MountCrudRoutes(r)
		params.SpendingHandler.MountCrudRoutes(r)
	})

	if params.JobsHandler != nil {
		r.Route("/jobs", params.JobsHandler.MountRoutes)
	}

	return r
}
