package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"quotation-service/internal/config"
	"quotation-service/internal/middleware"
	quoteHnd "quotation-service/internal/quote/handler"
	"quotation-service/internal/quote/pincode"
	"quotation-service/internal/quote/rates"
	"quotation-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, rc *rates.Client, std pincode.Standardizer) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/quotation/bulk", quoteHnd.BulkQuotation(cfg, logger, rc))
		r.Post("/quotation/best-vendors", quoteHnd.BestVendors(cfg, logger, rc))
		r.Post("/quotations/search", quoteHnd.SearchQuotations(cfg, logger, rc, std))
		r.Get("/vendor-rates", quoteHnd.VendorRates(logger, rc))
		r.Post("/vendor-rates/refresh", quoteHnd.RefreshRates(logger, rc))
		r.Get("/locations", quoteHnd.Locations(logger, rc))
		r.Get("/vendors", quoteHnd.Vendors(logger, rc))
		r.Get("/analytics/dashboard", quoteHnd.Dashboard(logger, rc))
	})

	return r
}
