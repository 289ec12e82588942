package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/profilkantor/profile-api/internal/auth"
	"github.com/profilkantor/profile-api/internal/config"
	"github.com/profilkantor/profile-api/internal/http/handler"
	"github.com/profilkantor/profile-api/internal/http/middleware"
	"github.com/profilkantor/profile-api/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/profilkantor/profile-api/docs" // registers the swagger document
)

// Handlers groups the HTTP handlers mounted by the router
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Testimoni *handler.TestimoniHandler
	Kegiatan  *handler.KegiatanHandler
	Laporan   *handler.LaporanHandler
	Jabatan   *handler.JabatanHandler
	Karyawan  *handler.KaryawanHandler
	File      *handler.FileHandler
}

type Router struct {
	cfg            *config.Config
	logger         *zap.Logger
	resp           *handler.Responder
	authMiddleware *auth.Middleware
	rateLimiter    *middleware.RateLimiter
	metrics        *metrics.Registry
	h              Handlers
}

// NewRouter creates the router. reg may be nil, which disables /metrics.
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	resp *handler.Responder,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	reg *metrics.Registry,
	handlers Handlers,
) *Router {
	return &Router{
		cfg:            cfg,
		logger:         logger,
		resp:           resp,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		metrics:        reg,
		h:              handlers,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.Recoverer(rt.logger, !rt.cfg.App.IsProduction()))
	if rt.metrics != nil && rt.cfg.Server.EnableMetrics {
		r.Use(middleware.Metrics(rt.metrics.HTTP))
	}
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	r.NotFound(rt.resp.RouteNotFound)
	r.MethodNotAllowed(rt.resp.RouteNotFound)

	r.Get("/health", rt.h.Health.Live)
	r.Get("/health/db", rt.h.Health.Database)
	r.Get("/health/ready", rt.h.Health.Ready)

	if rt.metrics != nil && rt.cfg.Server.EnableMetrics {
		r.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Get(rt.h.File.Pattern(), rt.h.File.Serve)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(rt.rateLimiter.LimitLogin)
			r.Post("/auth/register", rt.h.Auth.Register)
			r.Post("/auth/login", rt.h.Auth.Login)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)
			r.Use(rt.rateLimiter.Limit)

			r.Get("/auth/profile", rt.h.Auth.Profile)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", rt.h.User.List)
				r.Post("/", rt.h.User.Create)
				r.Get("/{id}", rt.h.User.GetByID)
				r.Put("/{id}", rt.h.User.Update)
			})

			r.Route("/testimoni", func(r chi.Router) {
				r.Get("/", rt.h.Testimoni.List)
				r.Post("/", rt.h.Testimoni.Create)
				r.Get("/{id}", rt.h.Testimoni.GetByID)
				r.Put("/{id}", rt.h.Testimoni.Update)
			})

			r.Route("/kegiatan", func(r chi.Router) {
				r.Get("/", rt.h.Kegiatan.List)
				r.Post("/", rt.h.Kegiatan.Create)
				r.Get("/active", rt.h.Kegiatan.ListActive)
				r.Get("/inactive", rt.h.Kegiatan.ListInactive)
				r.Get("/{id}", rt.h.Kegiatan.GetByID)
				r.Put("/{id}", rt.h.Kegiatan.Update)
			})

			r.Route("/laporan", func(r chi.Router) {
				r.Get("/", rt.h.Laporan.List)
				r.Post("/", rt.h.Laporan.Create)
				r.Get("/{id}", rt.h.Laporan.GetByID)
				r.Put("/{id}", rt.h.Laporan.Update)
			})

			r.Route("/jabatan", func(r chi.Router) {
				r.Get("/", rt.h.Jabatan.List)
				r.Post("/", rt.h.Jabatan.Create)
				r.Get("/active", rt.h.Jabatan.ListActive)
				r.Get("/inactive", rt.h.Jabatan.ListInactive)
				r.Get("/{id}", rt.h.Jabatan.GetByID)
				r.Put("/{id}", rt.h.Jabatan.Update)
				r.Delete("/{id}", rt.h.Jabatan.Delete)
			})

			r.Route("/karyawan", func(r chi.Router) {
				r.Get("/", rt.h.Karyawan.List)
				r.Post("/", rt.h.Karyawan.Create)
				r.Get("/active", rt.h.Karyawan.ListActive)
				r.Get("/inactive", rt.h.Karyawan.ListInactive)
				r.Get("/{id}", rt.h.Karyawan.GetByID)
				r.Put("/{id}", rt.h.Karyawan.Update)
				r.Delete("/{id}", rt.h.Karyawan.Delete)
				r.Patch("/{id}/soft-delete", rt.h.Karyawan.SoftDelete)
				r.Patch("/{id}/restore", rt.h.Karyawan.Restore)
			})
		})
	})

	return r
}
