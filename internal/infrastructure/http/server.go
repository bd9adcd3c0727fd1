package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	handlers "github.com/rdinit/hackathonService/internal/adapter/handler/http"
	"github.com/rdinit/hackathonService/internal/config"
	"github.com/rdinit/hackathonService/internal/middleware/auth"
	"github.com/rdinit/hackathonService/pkg/logger"
)

// Pinger reports whether the store is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handlers groups the route handlers the server mounts
type Handlers struct {
	Hacker         *handlers.HackerHandler
	Role           *handlers.RoleHandler
	Team           *handlers.TeamHandler
	Hackathon      *handlers.HackathonHandler
	WinnerSolution *handlers.WinnerSolutionHandler
}

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	handlers Handlers
	verifier auth.TokenVerifier
	registry *prometheus.Registry
	db       Pinger
}

func NewServer(
	cfg *config.Config,
	log *zap.Logger,
	h Handlers,
	verifier auth.TokenVerifier,
	registry *prometheus.Registry,
	db Pinger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewRequestValidator()
	logger.WithEchoLogger(e, log)

	e.Server.ReadTimeout = cfg.Server.HTTP.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.HTTP.WriteTimeout

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return gonanoid.Must() },
	}))
	e.Use(logger.NewEchoRequestLogger(log))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.HTTP.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  config.ServiceName,
		Registerer: registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	s := &Server{
		config:   cfg,
		logger:   log,
		echo:     e,
		handlers: h,
		verifier: verifier,
		registry: registry,
		db:       db,
	}
	s.setupRoutes()
	return s
}

// Echo exposes the router, mainly for tests
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	status, code := "healthy", http.StatusOK
	if s.db != nil {
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.Error(err))
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
	}
	return c.JSON(code, map[string]string{
		"status":  status,
		"service": config.ServiceName,
	})
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.health)
	s.echo.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: s.registry}))

	requireAuth := auth.JWTMiddleware(auth.JWTConfig{
		Verifier: s.verifier,
		Logger:   s.logger,
	})

	hackers := s.echo.Group("/hacker")
	hackers.GET("", s.handlers.Hacker.List)
	hackers.POST("", s.handlers.Hacker.Upsert, requireAuth)
	hackers.GET("/me", s.handlers.Hacker.Me, requireAuth)
	hackers.PUT("/me/roles", s.handlers.Hacker.SetMyRoles, requireAuth)
	hackers.GET("/:id", s.handlers.Hacker.Get)
	hackers.PUT("/:id/roles", s.handlers.Hacker.SetRoles, requireAuth)

	roles := s.echo.Group("/role")
	roles.GET("", s.handlers.Role.List)
	roles.GET("/:id", s.handlers.Role.Get)

	teams := s.echo.Group("/team")
	teams.GET("", s.handlers.Team.List)
	teams.POST("", s.handlers.Team.Create, requireAuth)
	teams.GET("/my", s.handlers.Team.Mine, requireAuth)
	teams.GET("/:id", s.handlers.Team.Get)
	teams.POST("/:id/members", s.handlers.Team.AddMember, requireAuth)

	hackathons := s.echo.Group("/hackathon")
	hackathons.GET("", s.handlers.Hackathon.List)
	hackathons.POST("", s.handlers.Hackathon.Upsert, requireAuth)
	hackathons.GET("/:id", s.handlers.Hackathon.Get)
	hackathons.GET("/:id/winner-solutions", s.handlers.WinnerSolution.ListByHackathon, requireAuth)

	// Winner solutions are only visible to authenticated callers
	winners := s.echo.Group("/winner-solution", requireAuth)
	winners.GET("", s.handlers.WinnerSolution.List)
	winners.POST("", s.handlers.WinnerSolution.Create)
	winners.GET("/:id", s.handlers.WinnerSolution.Get)
}
