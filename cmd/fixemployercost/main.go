// Command fixemployercost resets employer_cost to basic_wage on every payslip.
package main

import (
	"context"
	"fmt"
	"os"

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

	if err := run(logger); err != nil {
		logger.Error("Fix failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(logger *zap.Logger) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := connection.ConnectGORM(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer connection.Close(db)

	maintenance := payroll.NewMaintenance(db, payroll.NewRepository(db), logger)

	logger.Info("Fixing employer cost for all payslips")
	updated, err := maintenance.RepairEmployerCost(ctx)
	if err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("Fixed %d payslips", updated))
	return nil
}
