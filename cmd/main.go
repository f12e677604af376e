package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bioacoustic-monitor/internal/config"
	"bioacoustic-monitor/internal/infrastructure/database/postgres"
	"bioacoustic-monitor/internal/infrastructure/identity"
	"bioacoustic-monitor/internal/infrastructure/realtime"
	"bioacoustic-monitor/internal/infrastructure/storage"
	"bioacoustic-monitor/internal/logger"
	"bioacoustic-monitor/internal/routes"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application", zap.String("environment", env))

	if cfg.Database.Driver != postgres.DriverSQLite && (cfg.Database.Host == "" || cfg.Database.DBName == "") {
		logger.Fatal("Database configuration is missing. Please set DB_HOST and DB_NAME environment variables.")
	}
	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("JWT secret is missing. Please set JWT_SECRET environment variable.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx, cfg.Realtime.Channel); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	deps := &routes.Dependencies{
		DB:  db,
		Hub: realtime.NewHub(16, cfg.CORS.AllowedOrigins),
	}

	var source realtime.Source
	switch cfg.Realtime.Source {
	case "postgres":
		source = realtime.NewPostgresSource(cfg.Database.DSN(), cfg.Realtime.Channel)
		deps.Publisher = realtime.NopPublisher{}
	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		source = realtime.NewRedisSource(rdb, cfg.Realtime.Channel)
		deps.Publisher = realtime.NewRedisPublisher(rdb, cfg.Realtime.Channel)
	}
	go func() {
		if err := realtime.Pump(ctx, source, deps.Hub); err != nil {
			logger.Error("Realtime change feed stopped", zap.Error(err))
		}
	}()

	clips, err := storage.NewClipStore(ctx, storage.S3Config{
		Bucket:       cfg.Storage.Bucket,
		Region:       cfg.Storage.Region,
		Endpoint:     cfg.Storage.Endpoint,
		UsePathStyle: cfg.Storage.UsePathStyle,
		Expiry:       cfg.Storage.URLExpiry,
	})
	if err != nil {
		logger.Warn("Audio clip storage unavailable, falling back to stored URLs", zap.Error(err))
	} else {
		deps.Presigner = clips
	}

	if cfg.Auth.ProviderURL != "" && cfg.Auth.ServiceKey != "" {
		deps.Inviter = identity.NewClient(cfg.Auth.ProviderURL, cfg.Auth.ServiceKey)
	} else {
		logger.Warn("Identity provider not configured; invitations will fail")
		deps.Inviter = identity.Unconfigured{}
	}

	router := routes.SetupRoutes(ctx, cfg, deps)

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	// No WriteTimeout: the realtime websocket is a long-lived response.
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("address", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server", zap.Error(err))
	}
	logger.Info("Server exited properly")
}
