package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/sbv-scaffold/internal/core/ports"
	customMiddleware "github.com/avatarctic/sbv-scaffold/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
	Environment    string
	CacheMonitor   bool
}

// ServerDeps are the services behind the HTTP API. RateLimiterService may be nil.
type ServerDeps struct {
	AuthService         ports.AuthService
	CaptchaService      ports.CaptchaService
	CacheMonitorService ports.CacheMonitorService
	RateLimiterService  ports.RateLimiterService
	HealthCheckers      []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	authSvc        ports.AuthService
	captchaSvc     ports.CaptchaService
	monitorSvc     ports.CacheMonitorService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		authSvc:        deps.AuthService,
		captchaSvc:     deps.CaptchaService,
		monitorSvc:     deps.CacheMonitorService,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.RateLimiterService,
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	e.HTTPErrorHandler = server.errorHandler
	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) isDevelopment() bool {
	return s.config != nil && s.config.Environment == "development"
}
