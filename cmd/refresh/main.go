package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2beens/fitdash/internal"
	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/internal/datapull"
	"github.com/2beens/fitdash/internal/db"
	"github.com/2beens/fitdash/internal/logging"
	"github.com/2beens/fitdash/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// one-shot refresh of all data sources, e.g. from a system cron or by hand
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	timeout := flag.Duration("timeout", 30*time.Minute, "max duration of the refresh run")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, timeoutCancel := context.WithTimeout(ctx, *timeout)
	defer timeoutCancel()

	if err := run(ctx, cfg); err != nil {
		log.Errorf("refresh: %s", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	})
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	if err := db.Migrate(ctx, dbPool); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}

	rdb := internal.NewRedisClient(ctx, cfg, os.Getenv("FITDASH_REDIS_PASS"), false)
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("close redis client: %s", err)
		}
	}()

	gdriveCreds, err := internal.LoadGDriveCredentials(os.Getenv("FITDASH_GDRIVE_CREDS"))
	if err != nil {
		return fmt.Errorf("read gdrive credentials: %w", err)
	}

	refresher, err := internal.NewRefresher(ctx, internal.RefresherSetupParams{
		Config:            cfg,
		DBPool:            dbPool,
		RedisClient:       rdb,
		MetricsManager:    metrics.NewManager("fitdash", "refresh_cli", prometheus.NewRegistry()),
		OuraToken:         os.Getenv("FITDASH_OURA_TOKEN"),
		GDriveCredentials: gdriveCreds,
	})
	if err != nil {
		return err
	}

	status, err := refresher.Run(ctx, datapull.MethodCLI)
	if status != nil {
		fmt.Printf("refresh %s: %s, %d records pulled\n", status.ID, status.Status, status.RecordsPulled)
	}
	return err
}
