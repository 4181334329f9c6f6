// Command addemployercost adds the payslips.employer_cost column and fills it
// with basic_wage on every payslip that predates the column.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go-payroll/internal/payroll"
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

	sqlPath := flag.String("sql", "", "schema file to apply (default <MIGRATIONS_DIR>/000003_add_employer_cost.up.sql)")
	flag.Parse()

	if err := run(logger, *sqlPath); err != nil {
		logger.Error("Migration failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(logger *zap.Logger, sqlPath string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if sqlPath == "" {
		sqlPath = filepath.Join(cfg.MigrationsDir, "000003_add_employer_cost.up.sql")
	}

	statement, err := os.ReadFile(sqlPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", sqlPath, err)
	}

	db, err := connection.ConnectGORM(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer connection.Close(db)

	maintenance := payroll.NewMaintenance(db, payroll.NewRepository(db), logger)

	logger.Info("Running migration", zap.String("file", sqlPath))
	if err := maintenance.ApplySchema(ctx, string(statement)); err != nil {
		return err
	}

	res, err := maintenance.BackfillEmployerCost(ctx)
	if err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("Updated %d payslips", res.Updated))
	logger.Info("Migration completed successfully")
	return nil
}
