// Command migrate applies the SQL files in MIGRATIONS_DIR.
//
//	migrate up|down|version
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go-payroll/internal/migration"
	"go-payroll/internal/shared/config"
	"go-payroll/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: migrate up|down|version")
	}
	flag.Parse()

	if err := run(logger, flag.Arg(0)); err != nil {
		logger.Error("migrate failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(logger *zap.Logger, command string) error {
	switch command {
	case "up", "down", "version":
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := connection.ConnectGORM(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer connection.Close(db)

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	m, err := migration.New(sqlDB, cfg.MigrationsDir, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	switch command {
	case "up":
		return m.Up()
	case "down":
		return m.Down()
	default:
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
		return nil
	}
}
