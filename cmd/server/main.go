package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	handlers "github.com/rdinit/hackathonService/internal/adapter/handler/http"
	"github.com/rdinit/hackathonService/internal/config"
	"github.com/rdinit/hackathonService/internal/infrastructure/database"
	"github.com/rdinit/hackathonService/internal/infrastructure/fixtures"
	grpcServer "github.com/rdinit/hackathonService/internal/infrastructure/grpc"
	httpServer "github.com/rdinit/hackathonService/internal/infrastructure/http"
	"github.com/rdinit/hackathonService/internal/infrastructure/metrics"
	"github.com/rdinit/hackathonService/internal/middleware/auth"
	"github.com/rdinit/hackathonService/internal/usecase"
	"github.com/rdinit/hackathonService/pkg/logger"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(cfg.Log, config.ServiceName)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection
	db, err := database.NewConnection(ctx, &cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zapLogger); err != nil {
			zapLogger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	// Run database migrations
	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("Failed to get database handle", zap.Error(err))
	}

	repos := database.NewRepositories(db, zapLogger)
	registry := prometheus.NewRegistry()

	services := usecase.NewServices(usecase.Dependencies{
		Tx:              repos.Tx,
		Hackers:         repos.Hacker,
		Roles:           repos.Role,
		Teams:           repos.Team,
		Hackathons:      repos.Hackathon,
		WinnerSolutions: repos.WinnerSolution,
		Clock:           clockwork.NewRealClock(),
		Metrics:         metrics.New(registry),
		Logger:          zapLogger,
		ValidateWindows: cfg.Hackathon.ValidateWindows,
	})

	if err := services.Role.Seed(ctx); err != nil {
		zapLogger.Fatal("Failed to seed roles", zap.Error(err))
	}

	if cfg.Demo.Enabled {
		demo, err := fixtures.Load(cfg.Demo.FixturesPath)
		if err != nil {
			zapLogger.Fatal("Failed to load demo fixtures", zap.Error(err))
		}
		if _, err := services.NewDemoData(cfg.Demo.Seed, zapLogger).Initialize(ctx, demo); err != nil {
			zapLogger.Fatal("Failed to initialize demo data", zap.Error(err))
		}
	}

	// Initialize servers
	httpSrv := httpServer.NewServer(cfg, zapLogger, httpServer.Handlers{
		Hacker:         handlers.NewHackerHandler(services.Hacker, zapLogger),
		Role:           handlers.NewRoleHandler(services.Role, zapLogger),
		Team:           handlers.NewTeamHandler(services.Team, services.Hacker, zapLogger),
		Hackathon:      handlers.NewHackathonHandler(services.Hackathon, zapLogger),
		WinnerSolution: handlers.NewWinnerSolutionHandler(services.WinnerSolution, zapLogger),
	}, auth.NewVerifier(cfg.Auth, zapLogger), registry, sqlDB)

	var grpcSrv *grpcServer.Server
	if cfg.Server.GRPC.Enabled {
		grpcSrv = grpcServer.NewServer(cfg, zapLogger, sqlDB)
		go func() {
			if err := grpcSrv.Start(); err != nil {
				zapLogger.Fatal("Failed to start gRPC server", zap.Error(err))
			}
		}()
	}

	go func() {
		if err := httpSrv.Start(); err != nil {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zapLogger.Info("Shutting down servers...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	if grpcSrv != nil {
		if err := grpcSrv.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("Failed to shutdown gRPC server", zap.Error(err))
		}
	}

	zapLogger.Info("Servers shut down successfully")
}
