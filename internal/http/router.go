package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/uniform-analytics/docs"
	"github.com/rogerio-castellano/uniform-analytics/internal/http/handlers"
	"github.com/rogerio-castellano/uniform-analytics/internal/http/rate_limiter"
	"github.com/rogerio-castellano/uniform-analytics/internal/logger"
)

type routerConfig struct {
	limiter *rate_limiter.Limiter
	log     *logger.Logger
}

type Option func(*routerConfig)

// WithRateLimiter enables per client rate limiting.
func WithRateLimiter(l *rate_limiter.Limiter) Option {
	return func(c *routerConfig) { c.limiter = l }
}

// WithLogger enables request logging.
func WithLogger(l *logger.Logger) Option {
	return func(c *routerConfig) { c.log = l }
}

func NewRouter(opts ...Option) http.Handler {
	var cfg routerConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// The limiter keys on the connection address, before RealIP trusts forwarded headers.
	if cfg.limiter != nil {
		r.Use(RateLimitMiddleware(cfg.limiter))
	}
	r.Use(middleware.RealIP)
	if cfg.log != nil {
		r.Use(RequestLogger(cfg.log))
	}
	r.Use(middleware.Recoverer)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/analytics", func(r chi.Router) {
		r.Get("/", handlers.GetAnalyticsHandler)
		r.Get("/years", handlers.GetYearsHandler)
		r.Get("/size-demand", handlers.GetSizeDemandHandler)
		r.Get("/revenue", handlers.GetRevenueHandler)
		r.Get("/top-products", handlers.GetTopProductsHandler)
		r.Get("/schools/inventory", handlers.GetInventoryHealthHandler)
		r.Get("/schools/orders", handlers.GetOrderDistributionHandler)
		r.Get("/summary", handlers.GetSummaryHandler)
		r.Get("/categories", handlers.GetCategoriesHandler)
		r.Get("/chart", handlers.GetChartHandler)
		r.Get("/export.xlsx", handlers.ExportAnalyticsHandler)
		r.Post("/refresh", handlers.RefreshAnalyticsHandler)
	})

	r.Post("/orders", handlers.CreateOrderHandler)
	r.Post("/orders/import", handlers.ImportOrdersHandler)
	r.Get("/orders", handlers.GetOrdersHandler)
	r.Get("/orders/{id}", handlers.GetOrderByIDHandler)
	r.Delete("/orders/{id}", handlers.DeleteOrderHandler)

	r.Post("/batches", handlers.CreateBatchHandler)
	r.Get("/batches", handlers.GetBatchesHandler)
	r.Get("/batches/{id}", handlers.GetBatchByIDHandler)
	r.Delete("/batches/{id}", handlers.DeleteBatchHandler)

	r.Post("/schools", handlers.CreateSchoolHandler)
	r.Get("/schools", handlers.GetSchoolsHandler)
	r.Get("/schools/{id}", handlers.GetSchoolByIDHandler)
	r.Delete("/schools/{id}", handlers.DeleteSchoolHandler)

	return r
}
