package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"server/internal/http/handlers"
	"server/internal/middleware"
)

// NewRouter assembles the API surface. countryLookup may be nil when no GeoIP
// database is configured.
func NewRouter(app *handlers.App, countryLookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(app.Config.AllowedOrigins),
		middleware.I18N(app.Config.DefaultLocale, countryLookup),
	)

	r.Get("/v1/healthz", app.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/v1/auth/login", app.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(app.JWTSecret))
		r.Use(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute))

		r.Get("/v1/me", app.Me)
		r.Get("/v1/me/history", app.MeHistory)

		r.Post("/v1/generate/strategy", app.GenerateStrategy)
		r.Post("/v1/generate/script", app.GenerateScript)
		r.Post("/v1/generate/channel", app.GenerateChannel)
		r.Post("/v1/generate/thumbnail", app.GenerateThumbnail)

		r.Post("/v1/plans/upgrade", app.UpgradePlan)

		r.Route("/v1/scripts", func(r chi.Router) {
			r.Get("/", app.ListScripts)
			r.Post("/", app.SaveScript)
			r.Get("/{id}", app.GetScript)
			r.Delete("/{id}", app.DeleteScript)
		})

		r.Route("/v1/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/users", app.AdminListUsers)
			r.Post("/users/{id}/reset", app.AdminResetCredits)
			r.Post("/users/{id}/block", app.AdminBlockUser)
			r.Get("/audit", app.AdminAudit)
			r.Get("/costs", app.AdminGetCosts)
			r.Put("/costs", app.AdminPutCosts)
		})
	})

	return r
}
