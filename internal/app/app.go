package app

import (
	"context"

	"go-payroll/internal/shared/config"
	"go-payroll/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every module on router.
// The returned cleanup closes the connections it opened.
func BuildApp(ctx context.Context, router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORM(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		_ = connection.Close(gormDB)
		return nil, err
	}

	cleanup := func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("close redis failed", zap.Error(err))
		}
		if err := connection.Close(gormDB); err != nil {
			logger.Warn("close database failed", zap.Error(err))
		}
	}

	if err := registerModules(router, gormDB, rdb, cfg); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}
