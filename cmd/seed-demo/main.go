// Command seed-demo fills an empty database with the demo data set.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/rdinit/hackathonService/internal/config"
	"github.com/rdinit/hackathonService/internal/infrastructure/database"
	"github.com/rdinit/hackathonService/internal/infrastructure/fixtures"
	"github.com/rdinit/hackathonService/internal/infrastructure/metrics"
	"github.com/rdinit/hackathonService/internal/usecase"
	pkgconfig "github.com/rdinit/hackathonService/pkg/config"
	"github.com/rdinit/hackathonService/pkg/logger"
)

func main() {
	fixturesPath := flag.String("fixtures", "", "demo fixtures YAML (default: embedded data set)")
	configDir := flag.String("config-dir", "", "directory holding hackathon.yaml")
	seed := flag.Int64("seed", 0, "random seed (default: demo.seed from config)")
	migrate := flag.Bool("migrate", true, "run schema migrations first")
	flag.Parse()

	_ = godotenv.Load()

	var opts []pkgconfig.Option
	if *configDir != "" {
		opts = append(opts, pkgconfig.WithConfigDir(*configDir))
	}
	cfg, err := config.LoadConfig(opts...)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *fixturesPath == "" {
		*fixturesPath = cfg.Demo.FixturesPath
	}
	if *seed == 0 {
		*seed = cfg.Demo.Seed
	}

	zapLogger, err := logger.NewZapLogger(cfg.Log, config.ServiceName)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	demo, err := fixtures.Load(*fixturesPath)
	if err != nil {
		zapLogger.Fatal("Failed to load demo fixtures", zap.Error(err))
	}

	db, err := database.NewConnection(ctx, &cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db, zapLogger)

	if *migrate {
		if err := database.Migrate(db, zapLogger); err != nil {
			zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
		}
	}

	repos := database.NewRepositories(db, zapLogger)
	services := usecase.NewServices(usecase.Dependencies{
		Tx:              repos.Tx,
		Hackers:         repos.Hacker,
		Roles:           repos.Role,
		Teams:           repos.Team,
		Hackathons:      repos.Hackathon,
		WinnerSolutions: repos.WinnerSolution,
		Clock:           clockwork.NewRealClock(),
		Metrics:         metrics.New(prometheus.NewRegistry()),
		Logger:          zapLogger,
		ValidateWindows: cfg.Hackathon.ValidateWindows,
	})

	summary, err := services.NewDemoData(*seed, zapLogger).Initialize(ctx, demo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize demo data", zap.Error(err))
	}
	if summary.Skipped {
		zapLogger.Info("Nothing to do: database already has hackers")
	}
}
