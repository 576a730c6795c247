package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/soundreel/admin-backend/api/controllers"
	"github.com/soundreel/admin-backend/api/middleware"
	"github.com/soundreel/admin-backend/internal/admins"
	"github.com/soundreel/admin-backend/internal/appusers"
	"github.com/soundreel/admin-backend/internal/auth"
	"github.com/soundreel/admin-backend/internal/catalog"
	"github.com/soundreel/admin-backend/internal/sounds"
	"github.com/soundreel/admin-backend/internal/verifications"
	"github.com/soundreel/admin-backend/internal/videos"
	"github.com/soundreel/admin-backend/pkg/auth/session"
	"github.com/soundreel/admin-backend/pkg/config"
	"github.com/soundreel/admin-backend/pkg/logger"
	"github.com/soundreel/admin-backend/pkg/metrics"
)

// Services bundles everything the router mounts.
type Services struct {
	Auth          auth.Service
	Admins        admins.Service
	Users         appusers.Service
	Catalog       catalog.Service
	Sounds        sounds.Service
	Videos        videos.Service
	Verifications verifications.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	sessionChecker session.AccessSessionChecker,
	httpMetrics *metrics.HTTPMetrics,
	metricsRegistry prometheus.Gatherer,
	pingers map[string]controllers.Pinger,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, pingers))
	})

	if metricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(svcs.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(svcs.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))
			r.Post("/logout", controllers.AuthLogout(svcs.Auth, logg))
			r.Post("/change-password", controllers.AuthChangePassword(svcs.Auth, logg))
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))

		r.Route("/admins", func(r chi.Router) {
			r.Use(middleware.RequireSuperAdmin(logg))
			r.Get("/", controllers.AdminList(svcs.Admins, logg))
			r.Post("/", controllers.AdminSave(svcs.Admins, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.UserList(svcs.Users, logg))
			r.Get("/search", controllers.UserSearch(svcs.Users, logg))
			r.Post("/", controllers.UserSave(svcs.Users, logg))
			r.Post("/{userId}/block", controllers.UserBlock(svcs.Users, logg))
			r.Post("/{userId}/unblock", controllers.UserUnblock(svcs.Users, logg))
		})

		r.Route("/discovery-sections", func(r chi.Router) {
			r.Get("/", controllers.DiscoverySectionList(svcs.Catalog, logg))
			r.Post("/", controllers.DiscoverySectionSave(svcs.Catalog, logg))
			r.Delete("/{sectionId}", controllers.DiscoverySectionDelete(svcs.Catalog, logg))
		})

		r.Route("/sound-sections", func(r chi.Router) {
			r.Get("/", controllers.SoundSectionList(svcs.Catalog, logg))
			r.Post("/", controllers.SoundSectionSave(svcs.Catalog, logg))
			r.Delete("/{sectionId}", controllers.SoundSectionDelete(svcs.Catalog, logg))
		})

		r.Route("/sound-languages", func(r chi.Router) {
			r.Get("/", controllers.SoundLanguageList(svcs.Catalog, logg))
			r.Post("/", controllers.SoundLanguageSave(svcs.Catalog, logg))
			r.Delete("/{languageId}", controllers.SoundLanguageDelete(svcs.Catalog, logg))
		})

		r.Route("/sounds", func(r chi.Router) {
			r.Get("/", controllers.SoundList(svcs.Sounds, logg))
			r.Get("/search", controllers.SoundSearch(svcs.Sounds, logg))
			r.Post("/", controllers.SoundSave(svcs.Sounds, cfg.Media, logg))
			r.Delete("/{soundId}", controllers.SoundDelete(svcs.Sounds, logg))
		})

		r.Route("/videos", func(r chi.Router) {
			r.Get("/", controllers.VideoList(svcs.Videos, logg))
			r.Post("/", controllers.VideoSave(svcs.Videos, cfg.Media, logg))
			r.Delete("/{videoId}", controllers.VideoDelete(svcs.Videos, logg))
		})

		r.Route("/verifications", func(r chi.Router) {
			r.Get("/", controllers.VerificationList(svcs.Verifications, logg))
			r.Post("/", controllers.VerificationSubmit(svcs.Verifications, cfg.Media, logg))
			r.Post("/{verificationId}/decision", controllers.VerificationDecide(svcs.Verifications, logg))
		})
	})

	return r
}
