package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/bootstrap"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/usecase/aggregator"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/config"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/logger"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/postgresql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.NewLogger(
		logger.WithServiceName("bucket-aggregator"),
		logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)),
	)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer lg.Sync()

	pg, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pg.Close()

	app := (&bootstrap.Bootstrap{}).Init(bootstrap.BootstrapConfig{
		Postgres: pg,
		Logger:   lg,
		Config:   cfg,
	})

	agg, err := aggregator.NewUsecase(
		app.Usecase.TickUsecase,
		app.Usecase.BarUsecase,
		app.Usecase.RunUsecase,
		cfg.Aggregator,
		lg,
	)
	if err != nil {
		log.Fatalf("failed to init aggregator: %v", err)
	}

	if err := agg.Start(ctx); err != nil && err != context.Canceled {
		lg.Error(err)
	}

	lg.Info("aggregator stopped")
}
