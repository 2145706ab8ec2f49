package http

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/storefront/pkg/health"
	"github.com/utafrali/storefront/pkg/middleware"
)

// RouterDeps carries everything NewRouter mounts.
type RouterDeps struct {
	Orders  OrderSubmitter
	Catalog CatalogReader
	Carts   SessionCarts
	Health  *health.Handler
	Static  fs.FS
	Logger  *slog.Logger
}

// NewRouter creates a chi router with the storefront pages, the order
// intake and the session cart API.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Tracing("github.com/utafrali/storefront"))
	r.Use(middleware.RequestLogger(deps.Logger))

	r.Get("/health/live", deps.Health.LivenessHandler())
	r.Get("/health/ready", deps.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	pages := NewStorefrontHandler(deps.Catalog, deps.Logger)
	r.Get("/", pages.Index)
	r.Get("/cart", pages.Cart)

	if deps.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(deps.Static))))
	}

	orders := NewOrderHandler(deps.Orders, deps.Logger)
	r.With(ContentTypeJSON).Post("/submit_order", orders.SubmitOrder)
	r.Get("/api/v1/orders/{id}", orders.GetOrder)

	carts := NewCartHandler(deps.Carts, deps.Logger)
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(RequireSessionID)

		r.Get("/", carts.GetCart)
		r.Delete("/", carts.ClearCart)
		r.Post("/items", carts.AddItem)
	})

	return r
}
