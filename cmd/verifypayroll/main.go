// Command verifypayroll prints a formula audit of a few stored payslips.
// Mismatches are reported, not treated as failures.
package main

import (
	"context"
	"flag"
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

	limit := flag.Int("limit", payroll.DefaultVerificationLimit, "number of payslips to check")
	flag.Parse()

	if err := run(logger, *limit); err != nil {
		logger.Error("Verification failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(logger *zap.Logger, limit int) error {
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

	report, err := maintenance.Verify(ctx, limit)
	if err != nil {
		return err
	}
	return payroll.RenderReport(os.Stdout, report)
}
