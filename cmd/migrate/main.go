package main

import (
	"context"
	"log"
	"os"

	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/config"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/migration"
	"github.com/Mithileshan/stockpulse-batch-realtime-etl/pkg/postgresql"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	client, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer client.Close()

	runner := migration.NewRunner(client, migration.Config{
		MigrationDir: cfg.App.MigrationsDir,
	})

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	switch direction {
	case "up":
		if err := runner.Up(ctx); err != nil {
			log.Fatalf("migration up failed: %v", err)
		}
		log.Println("migrations applied")
	case "down":
		if err := runner.Down(ctx); err != nil {
			log.Fatalf("migration down failed: %v", err)
		}
		log.Println("last migration rolled back")
	default:
		log.Fatalf("unknown direction %q, expected up or down", direction)
	}
}
