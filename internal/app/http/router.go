package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hurghada-dream/go_backend/internal/app/config"
	"hurghada-dream/go_backend/internal/app/http/handlers"
	"hurghada-dream/go_backend/internal/app/http/middleware"
	"hurghada-dream/go_backend/internal/infra/logger"
)

func NewRouter(cfg config.Config, h *handlers.Handlers, log *logger.Logger, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/activities", h.ListActivities)
		r.Get("/settings", h.GetSettings)

		r.Group(func(r chi.Router) {
			r.Use(middleware.InternalAuth(cfg.InternalToken))

			r.Post("/activities", h.CreateActivity)
			r.Put("/activities/{id}", h.UpdateActivity)
			r.Delete("/activities/{id}", h.DeleteActivity)
			r.Put("/settings", h.SaveSettings)

			r.Route("/quotes", func(r chi.Router) {
				r.Post("/", h.CreateQuote)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.GetQuote)
					r.Patch("/", h.UpdateQuote)
					r.Delete("/", h.DeleteQuote)
					r.Post("/items", h.AddQuoteItem)
					r.Patch("/items/{itemID}", h.SetQuoteItemQty)
					r.Delete("/items/{itemID}", h.RemoveQuoteItem)
					r.Get("/text", h.QuoteText)
					r.Get("/pdf", h.QuotePDF)
				})
			})
		})
	})

	return r
}
