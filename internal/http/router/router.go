package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ecodeli-delivery/internal/auth"
	"ecodeli-delivery/internal/http/handlers"
	"ecodeli-delivery/internal/http/middleware"
	"ecodeli-delivery/internal/http/middleware/ratelimit"
	"ecodeli-delivery/internal/logx"
)

const requestTimeout = 5 * time.Second

// New constructs the chi router: ops endpoints stay public, the rest needs a bearer token.
func New(
	logger logx.Logger,
	h *handlers.Handlers,
	packages *handlers.PackageHandler,
	couriers *handlers.CourierHandler,
	verifier *auth.Verifier,
	rl *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(verifier, logger))
		if rl != nil {
			r.Use(rl.Handler())
		}

		r.Route("/packages", func(r chi.Router) {
			r.Get("/pending-transfers", packages.PendingTransfers)
			r.Get("/mydeliveries", packages.MyDeliveries)
			r.Patch("/{id}/status", packages.UpdateStatus)
			r.Post("/{id}/transfer", packages.Transfer)
			r.Post("/{id}/confirm-transfer", packages.ConfirmTransfer)
		})
		r.Get("/transfer-history/progress/{packageId}", packages.Progress)

		r.Get("/couriers", couriers.List)
		r.Get("/couriers/{id}", couriers.GetByID)
	})

	return r
}
