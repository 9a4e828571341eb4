package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/moverhub/backend/internal/api/handlers"
	"github.com/moverhub/backend/internal/api/middleware"
	"github.com/moverhub/backend/internal/config"
	"github.com/moverhub/backend/internal/pkg/logger"
	"github.com/moverhub/backend/internal/pkg/metrics"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	Account *handlers.AccountHandler
	Profile *handlers.ProfileHandler
	Billing *handlers.BillingHandler
	Webhook *handlers.WebhookHandler
}

func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200
	r.Use(metrics.Middleware)

	// Public routes
	r.Group(func(r chi.Router) {
		// Swagger documentation
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		// Health checks and metrics
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())

		// Signup
		r.Post("/api/v1/accounts", h.Account.Create)

		// Gateway webhook deliveries carry their own signature; the raw
		// body must reach the handler untouched.
		r.Post("/api/v1/billing/webhook", h.Webhook.Handle)
	})

	// Protected routes (require an identity-provider access token)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.Identity.JWTSecret))
		r.Use(middleware.AccountRateLimit(20, 40))

		// Mover profiles
		r.Route("/api/v1/movers/{email}", func(r chi.Router) {
			r.Get("/", h.Profile.Get)
			r.Put("/", h.Profile.Update)
			r.Post("/logo", h.Profile.UploadLogo)
		})

		// Billing & subscription
		r.Route("/api/v1/billing", func(r chi.Router) {
			r.Post("/checkout", h.Billing.Checkout)
			r.Post("/portal", h.Billing.Portal)
			r.Post("/cancel", h.Billing.Cancel)
		})
	})

	return r
}
