package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/avatarctic/sbv-scaffold/configs"
	"github.com/avatarctic/sbv-scaffold/internal/application/services"
	"github.com/avatarctic/sbv-scaffold/internal/core/ports"
	"github.com/avatarctic/sbv-scaffold/internal/infrastructure/health"
	"github.com/avatarctic/sbv-scaffold/internal/infrastructure/httpserver"
	"github.com/avatarctic/sbv-scaffold/internal/infrastructure/redis"
	"github.com/avatarctic/sbv-scaffold/internal/infrastructure/repositories"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting sbv-scaffold...")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	logger.Info("Connected to Redis successfully")

	codec, err := redis.CodecByName(cfg.Redis.Codec)
	if err != nil {
		logger.Fatal("Invalid cache codec:", err)
	}

	// One client, one facade per value type
	stringCache := redis.NewCache[string](redisClient, redis.WithPrefix(cfg.Redis.KeyPrefix), redis.WithCodec(codec))
	anyCache := redis.Rebind[any](stringCache)

	captchaService := services.NewCaptchaService(stringCache, &services.CaptchaConfig{
		Enabled:   cfg.Captcha.Enabled,
		TTL:       cfg.Captcha.TTL,
		Length:    cfg.Captcha.Length,
		KeyPrefix: cfg.Captcha.KeyPrefix,
	}, logger)
	authService := services.NewAuthService(captchaService, logger)
	monitorService := services.NewCacheMonitorService(anyCache, anyCache, logger)

	var rateLimiterService ports.RateLimiterService
	if cfg.RateLimit.Enabled {
		rateLimiterService = services.NewRateLimiterService(repositories.NewRateLimitRedisRepository(redisClient), &services.RateLimiterConfig{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			BurstMultiplier:   cfg.RateLimit.BurstMultiplier,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         cfg.RateLimit.KeyPrefix,
		}, logger)
	}

	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Environment:    cfg.Server.Environment,
		CacheMonitor:   cfg.Server.CacheMonitor,
	}

	deps := httpserver.ServerDeps{
		AuthService:         authService,
		CaptchaService:      captchaService,
		CacheMonitorService: monitorService,
		RateLimiterService:  rateLimiterService,
		HealthCheckers:      []ports.HealthChecker{health.NewRedisHealthChecker(redisClient)},
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	if cfg.Server.CacheMonitor {
		logger.Warn("Cache monitor endpoints are enabled and unauthenticated")
	}

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
