package payroll

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	jwtSecret string,
) {
	auth := middleware.AuthMiddleware(jwtSecret)

	payruns := r.Group("/payruns")
	payruns.Use(auth)
	{
		payruns.POST("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "generate"),
			handler.CreatePayRun,
		)
		payruns.POST("/:id/payslips",
			middleware.RateLimitByUser(2, 20),
			middleware.RBACAuthorize(rbacService, "payroll", "generate"),
			middleware.Idempotency(rdb),
			handler.RequestPayslip,
		)
		payruns.GET("/:id/payslips",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.ListPayslips,
		)
	}

	payslips := r.Group("/payslips")
	payslips.Use(auth)
	{
		payslips.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetPayslip,
		)
		payslips.GET("/:id/pdf",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.DownloadPayslip,
		)
	}

	r.GET("/payroll/verification",
		auth,
		middleware.RateLimitByUser(0.2, 1),
		middleware.RBACAuthorize(rbacService, "payroll", "verify"),
		handler.Verify,
	)
}
