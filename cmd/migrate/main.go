package main

// Run database migrations:
//   go run ./cmd/migrate          apply pending migrations
//   go run ./cmd/migrate status   print migration status

import (
	"context"
	"fmt"
	"os"

	"resume-scorer/internal/shared/config"
	"resume-scorer/internal/shared/storage/db"
	"resume-scorer/internal/shared/telemetry"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"error": err})
		telemetry.Sync()
		os.Exit(1)
	}
	telemetry.Sync()
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := telemetry.Setup(cfg.LogFormat, cfg.LogLevel); err != nil {
		return err
	}
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer sqlDB.Close()

	command := "up"
	if len(args) > 0 {
		command = args[0]
	}
	switch command {
	case "up":
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		telemetry.Info("migrate.done", nil)
		return nil
	case "status":
		return db.MigrationStatus(ctx, sqlDB)
	default:
		return fmt.Errorf("unknown command %q (want up or status)", command)
	}
}
