package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"sekor-bkc/pkg/config"
	"sekor-bkc/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		dir     = flag.String("dir", "migrations", "directory with migration files")
		command = flag.String("command", "up", "migration command (up, down, status, create, version)")
		name    = flag.String("name", "", "name for new migration (used with create command)")
	)
	flag.Parse()

	log := logger.NewWithConfig(logger.Config{Level: "info", Pretty: true, ServiceName: "migrate"})

	cfg, err := config.Load()
	if err != nil {
		fatal(log, "Failed to load config: %v", err)
	}
	if cfg.DBDriver != "postgres" {
		fatal(log, "Migrations target postgres, got DB_DRIVER=%s (use DB_AUTO_MIGRATE for other drivers)", cfg.DBDriver)
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		fatal(log, "Failed to open database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		fatal(log, "Failed to set dialect: %v", err)
	}

	switch *command {
	case "create":
		if *name == "" {
			fatal(log, "Name is required for create command")
		}
		if err := goose.Create(db, *dir, *name, "sql"); err != nil {
			fatal(log, "Failed to create migration: %v", err)
		}
		log.Info("Created migration: %s", *name)
	case "up":
		if err := goose.Up(db, *dir); err != nil {
			fatal(log, "Failed to run migrations: %v", err)
		}
		log.Info("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, *dir); err != nil {
			fatal(log, "Failed to rollback migrations: %v", err)
		}
		log.Info("Migrations rolled back successfully")
	case "status":
		if err := goose.Status(db, *dir); err != nil {
			fatal(log, "Failed to get migration status: %v", err)
		}
	case "version":
		if err := goose.Version(db, *dir); err != nil {
			fatal(log, "Failed to get migration version: %v", err)
		}
	default:
		fatal(log, "Unknown command: %s", *command)
	}
}

func fatal(log *logger.Logger, format string, args ...interface{}) {
	log.Error(format, args...)
	os.Exit(1)
}
