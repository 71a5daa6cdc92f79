package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appMiddleware "github.com/tiagorb/enrollment-console/internal/middleware"
	"github.com/tiagorb/enrollment-console/internal/response"
)

type Router struct {
	studentHandler    *StudentHandler
	rosterHandler     *RosterHandler
	exportHandler     *ExportHandler
	preferenceHandler *PreferenceHandler
}

func NewRouter(
	studentHandler *StudentHandler,
	rosterHandler *RosterHandler,
	exportHandler *ExportHandler,
	preferenceHandler *PreferenceHandler,
) *Router {
	return &Router{
		studentHandler:    studentHandler,
		rosterHandler:     rosterHandler,
		exportHandler:     exportHandler,
		preferenceHandler: preferenceHandler,
	}
}

func (ro *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, "Console is up", map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		// Students
		r.Route("/students", func(r chi.Router) {
			r.Get("/", ro.studentHandler.GetAll)
			r.Post("/", ro.studentHandler.Create)
			r.Get("/{id}", ro.studentHandler.GetByID)
			r.Put("/{id}", ro.studentHandler.Update)
			r.Delete("/{id}", ro.studentHandler.Delete)
		})

		// Classes and roster-wide reads
		r.Get("/classes", ro.rosterHandler.GetClasses)
		r.Get("/stats", ro.rosterHandler.GetStats)
		r.Post("/refresh", ro.rosterHandler.Refresh)

		// Transfers
		r.Post("/transfers", ro.rosterHandler.Transfer)

		// Export and preferences
		r.Get("/export", ro.exportHandler.Export)
		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", ro.preferenceHandler.Get)
			r.Put("/", ro.preferenceHandler.Put)
		})
	})

	return r
}
