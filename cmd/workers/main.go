package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"pm-ajay/monitoring-backend/internal/config"
	"pm-ajay/monitoring-backend/internal/projects"
)

// The reconciler periodically recomputes every project's derived fields.
// Request handlers keep statistics current on each mutation; this sweep
// heals drift from crashed requests or direct database changes.
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	if cfg.Logging.Level == "debug" {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	db, err := sqlx.Connect("postgres", cfg.Database.GetDatabaseURL())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	projectsService := projects.NewService(projects.NewRepository(db), logger)

	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		start := time.Now()
		count, err := projectsService.RecalculateAll(ctx)
		if err != nil {
			logger.Error("reconcile sweep failed", zap.Error(err))
			return
		}
		logger.Info("reconcile sweep finished",
			zap.Int("projects", count),
			zap.Duration("took", time.Since(start)))
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.Worker.ReconcileSchedule, run); err != nil {
		logger.Fatal("Invalid reconcile schedule",
			zap.String("schedule", cfg.Worker.ReconcileSchedule), zap.Error(err))
	}

	// One sweep at startup so a fresh deployment starts consistent.
	run()
	c.Start()
	logger.Info("Reconciler started", zap.String("schedule", cfg.Worker.ReconcileSchedule))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down reconciler...")
	<-c.Stop().Done()
	logger.Info("Reconciler exiting")
}
