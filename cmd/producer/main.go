package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/internal/producer"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/config"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.NewLogger(
		logger.WithServiceName("tick-producer"),
		logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)),
	)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer lg.Sync()

	sim := producer.NewSimulator(cfg.Producer, cfg.TickKafka, lg)

	if err := sim.Start(ctx); err != nil && err != context.Canceled {
		lg.Error(err)
	}

	lg.Info("tick producer stopped")
}
