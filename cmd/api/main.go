package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/profilkantor/profile-api/docs"
	"github.com/profilkantor/profile-api/internal/auth"
	"github.com/profilkantor/profile-api/internal/config"
	"github.com/profilkantor/profile-api/internal/database"
	"github.com/profilkantor/profile-api/internal/http/handler"
	"github.com/profilkantor/profile-api/internal/http/middleware"
	"github.com/profilkantor/profile-api/internal/http/router"
	"github.com/profilkantor/profile-api/internal/jobs"
	"github.com/profilkantor/profile-api/internal/logger"
	"github.com/profilkantor/profile-api/internal/metrics"
	"github.com/profilkantor/profile-api/internal/repository"
	"github.com/profilkantor/profile-api/internal/service"
	"github.com/profilkantor/profile-api/internal/storage"
	"go.uber.org/zap"
)

const orphanSweepTimeout = 10 * time.Minute

// @title Profile API
// @version 1.0
// @description Organization profile backend: activities, project reports, testimonials and staff directory

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	if !basicCfg.App.IsProduction() {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Environment variables in development, Key Vault in staging/production
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to auto-migrate: %w", err)
		}
		log.Info("Database schema auto-migrated")
	}

	backend, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	photos := storage.NewPhotoStore(backend, &cfg.Storage, log)
	log.Info("Storage initialized",
		zap.String("mode", cfg.Storage.Mode),
		zap.String("public_path", photos.PublicPath()),
	)

	reg := metrics.NewRegistry()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	testimoniRepo := repository.NewTestimoniRepository(db)
	kegiatanRepo := repository.NewKegiatanRepository(db)
	laporanRepo := repository.NewLaporanRepository(db)
	jabatanRepo := repository.NewJabatanRepository(db)
	karyawanRepo := repository.NewKaryawanRepository(db)

	// Services
	tokens := auth.NewTokenManager(&cfg.JWT)
	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, log)
	testimoniService := service.NewTestimoniService(testimoniRepo, log)
	kegiatanService := service.NewKegiatanService(kegiatanRepo, photos, log)
	laporanService := service.NewLaporanService(laporanRepo, photos, log)
	jabatanService := service.NewJabatanService(jabatanRepo, log)
	karyawanService := service.NewKaryawanService(karyawanRepo, jabatanRepo, photos, log)

	// Middleware
	authMiddleware := auth.NewMiddleware(tokens, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Handlers
	resp := handler.NewResponder(log, !cfg.App.IsProduction())
	maxBody := handler.UploadBodyLimit(&cfg.Storage)

	rt := router.NewRouter(cfg, log, resp, authMiddleware, rateLimiter, reg, router.Handlers{
		Health:    handler.NewHealthHandler(db, resp),
		Auth:      handler.NewAuthHandler(authService, resp),
		User:      handler.NewUserHandler(userService, resp),
		Testimoni: handler.NewTestimoniHandler(testimoniService, resp),
		Kegiatan:  handler.NewKegiatanHandler(kegiatanService, resp, maxBody),
		Laporan:   handler.NewLaporanHandler(laporanService, resp, maxBody),
		Jabatan:   handler.NewJabatanHandler(jabatanService, resp),
		Karyawan:  handler.NewKaryawanHandler(karyawanService, resp, maxBody),
		File:      handler.NewFileHandler(photos, resp),
	})

	// Background jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.OrphanSweepEnabled {
		scheduler = jobs.NewScheduler(log, reg.Jobs)
		sweep := jobs.NewOrphanSweepJob(photos, map[storage.Bucket]jobs.ReferenceFunc{
			storage.BucketKegiatan: kegiatanRepo.ReferencedPhotoNames,
			storage.BucketLaporan:  laporanRepo.ReferencedPhotoNames,
			storage.BucketKaryawan: jobs.FromURLs(karyawanRepo.ReferencedPhotoURLs),
		}, cfg.Jobs.OrphanGracePeriodDuration(), reg.Jobs, log)

		if err := jobs.RegisterOrphanSweepJob(scheduler, sweep, cfg.Jobs.OrphanSweepCron, orphanSweepTimeout); err != nil {
			log.Error("Failed to register orphan sweep job", zap.Error(err))
			scheduler = nil
		} else {
			scheduler.Start()
			log.Info("Scheduler started with orphan sweep job",
				zap.String("cron_expr", cfg.Jobs.OrphanSweepCron),
				zap.Duration("grace_period", cfg.Jobs.OrphanGracePeriodDuration()),
			)
		}
	} else {
		log.Info("Orphan sweep disabled")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			<-scheduler.Stop().Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
