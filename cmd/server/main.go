package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kiit_connect/internal/config"
	"kiit_connect/internal/handler"
	"kiit_connect/internal/middleware"
	"kiit_connect/internal/repository"
	"kiit_connect/internal/service"
	"kiit_connect/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const sessionCookieName = "kiit_session"

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := newLogger(cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	var (
		dbPool     *pgxpool.Pool
		userRepo   repository.UserRepository
		campusRepo repository.CampusRepository
		pinger     handler.Pinger
	)
	if cfg.StoreConfigured() {
		dbPool, err = config.ConnectDB(ctx, cfg.DSN(), logger)
		if err != nil {
			logger.Error("connect postgres", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		if err := config.AutoMigrate(ctx, dbPool, logger); err != nil {
			logger.Error("auto-migrate", "error", err)
			os.Exit(1)
		}
		userRepo = repository.NewUserRepository(dbPool)
		campusRepo = repository.NewCampusRepository(dbPool)
		pinger = dbPool
	} else if cfg.DemoMode {
		logger.Warn("no user store configured, running in demo mode")
	} else {
		logger.Warn("no user store configured, register and login will fail")
	}

	// --- Revocation list ---
	var revocations repository.RevocationRepository
	if cfg.RedisAddr != "" {
		var redisClient *redis.Client
		redisClient, err = config.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Error("connect redis", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", "error", err)
			}
		}()
		revocations = repository.NewRedisRevocationRepository(redisClient, nil)
	}

	// --- Initialize Services ---
	authService, err := service.NewAuthService(service.AuthConfig{
		Users:             userRepo,
		Revocations:       revocations,
		JWT:               utils.NewJWTUtil(cfg.JWTSecretKey, nil),
		HashCost:          cfg.BcryptCost,
		DemoMode:          cfg.DemoMode,
		Validation:        cfg.ValidationMode(),
		InitialAdminEmail: cfg.InitialAdminEmail,
		Logger:            logger,
	})
	if err != nil {
		logger.Error("init auth service", "error", err)
		os.Exit(1)
	}
	campusService := service.NewCampusService(campusRepo, logger)
	directoryService := service.NewDirectoryService(cfg.DataDir, logger)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, logger)
	campusHandler := handler.NewCampusHandler(campusService, directoryService, logger)
	healthHandler := handler.NewHealthHandler(pinger, cfg.DemoMode, cfg.StaticDir)

	// --- Setup Gin Router ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(utils.TokenTTL / time.Second),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	router.Use(
		middleware.Recovery(logger),
		middleware.RequestLogger(logger),
		middleware.SecureHeaders(cfg.IsProduction()),
		middleware.CORS(cfg.CORSOrigins),
		sessions.Sessions(sessionCookieName, sessionStore),
	)

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(authService)
	adminRoleMW := middleware.AdminMiddleware()

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW)
	campusHandler.RegisterCampusRoutes(apiGroup, jwtAuthMW, adminRoleMW)
	healthHandler.RegisterHealthRoutes(router, apiGroup)

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting http server", "port", cfg.ServerPort, "demo_mode", cfg.DemoMode, "validation", cfg.ValidationMode())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", "error", err)
			stop()
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", "error", err)
	}

	logger.Info("server exiting")
}

func newLogger(format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
