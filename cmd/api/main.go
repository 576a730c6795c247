package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/soundreel/admin-backend/api/controllers"
	"github.com/soundreel/admin-backend/api/routes"
	"github.com/soundreel/admin-backend/internal/admins"
	"github.com/soundreel/admin-backend/internal/appusers"
	"github.com/soundreel/admin-backend/internal/auth"
	"github.com/soundreel/admin-backend/internal/catalog"
	"github.com/soundreel/admin-backend/internal/media"
	"github.com/soundreel/admin-backend/internal/repo"
	"github.com/soundreel/admin-backend/internal/sounds"
	"github.com/soundreel/admin-backend/internal/verifications"
	"github.com/soundreel/admin-backend/internal/videos"
	"github.com/soundreel/admin-backend/pkg/auth/session"
	"github.com/soundreel/admin-backend/pkg/config"
	"github.com/soundreel/admin-backend/pkg/db"
	"github.com/soundreel/admin-backend/pkg/db/models"
	"github.com/soundreel/admin-backend/pkg/logger"
	"github.com/soundreel/admin-backend/pkg/metrics"
	"github.com/soundreel/admin-backend/pkg/migrate"
	"github.com/soundreel/admin-backend/pkg/redis"
	"github.com/soundreel/admin-backend/pkg/storage/gcs"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	gcsClient, err := gcs.NewClient(context.Background(), cfg.GCS, cfg.GCP, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap gcs", err)
		os.Exit(1)
	}

	mediaStore, err := media.NewStore(gcsClient, cfg.GCS.BucketName, cfg.GCS.DownloadURLExpiry)
	if err != nil {
		logg.Error(context.Background(), "failed to create media store", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	gdb := dbClient.DB()
	adminsRepo := admins.NewRepository(gdb)

	authService, err := auth.NewService(auth.ServiceParams{
		AdminRepo:      adminsRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	adminsService, err := admins.NewService(adminsRepo, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create admins service", err)
		os.Exit(1)
	}

	usersRepo := appusers.NewRepository(gdb)
	usersService, err := appusers.NewService(usersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewServiceFromDB(gdb)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	soundSections := repo.NewSoftDelete[models.SoundSection](gdb, "is_deleted")
	soundLanguages := repo.NewSoftDelete[models.SoundLanguage](gdb, "is_deleted")
	soundsService, err := sounds.NewService(sounds.NewRepository(gdb), soundSections, soundLanguages, mediaStore)
	if err != nil {
		logg.Error(context.Background(), "failed to create sounds service", err)
		os.Exit(1)
	}

	discoverySections := repo.NewSoftDelete[models.DiscoverySection](gdb, "is_deleted")
	videosService, err := videos.NewService(videos.NewRepository(gdb), sounds.NewRepository(gdb), usersRepo, discoverySections, mediaStore)
	if err != nil {
		logg.Error(context.Background(), "failed to create videos service", err)
		os.Exit(1)
	}

	verificationsService, err := verifications.NewService(verifications.NewRepository(gdb), usersRepo, mediaStore)
	if err != nil {
		logg.Error(context.Background(), "failed to create verifications service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting admin api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			sessionManager,
			httpMetrics,
			registry,
			map[string]controllers.Pinger{
				"db":    dbClient,
				"redis": redisClient,
				"gcs":   gcsClient,
			},
			routes.Services{
				Auth:          authService,
				Admins:        adminsService,
				Users:         usersService,
				Catalog:       catalogService,
				Sounds:        soundsService,
				Videos:        videosService,
				Verifications: verificationsService,
			},
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
