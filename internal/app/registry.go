package app

import (
	"net/http"

	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	"go-payroll/internal/rbac"
	"go-payroll/internal/rbac/infra"
	"go-payroll/internal/salary"
	"go-payroll/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) error {
	logger := zap.L()

	// --- Repositories ---
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath, cfg.RBACPolicyPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	salaryService := salary.NewServiceWithOutbox(gormDB, salaryRepo, outboxRepo, logger)
	payrollService := payroll.NewServiceWithOutbox(gormDB, payrollRepo, salaryRepo, outboxRepo, logger)
	maintenance := payroll.NewMaintenance(gormDB, payrollRepo, logger)

	// --- Handlers ---
	salaryHandler := salary.NewHandler(salaryService)
	payrollHandler := payroll.NewHandler(payrollService, maintenance)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	router.Use(middleware.ContextLogger(logger))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// coarse per-IP ceiling ahead of the per-user limits on each route
	api := router.Group("/api/v1", middleware.RateLimitByIP(20, 40))
	{
		salary.RegisterRoutes(api, salaryHandler, rbacService, rdb, cfg.JWTSecret)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb, cfg.JWTSecret)

		authed := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
		rbac.RegisterRoutes(authed, rbacHandler, middleware.RBACAuthorize(rbacService, "rbac", "reload"))
	}

	return nil
}
