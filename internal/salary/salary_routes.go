package salary

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
	salaries := r.Group("/salary")
	salaries.Use(middleware.AuthMiddleware(jwtSecret))
	{
		salaries.GET("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "salary", "read"),
			handler.List,
		)
		salaries.GET("/me",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "salary", "read_own"),
			handler.GetMine,
		)
		salaries.GET("/:employeeId/structure",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "salary", "read"),
			handler.GetByEmployee,
		)
		salaries.PUT("/:employeeId/structure",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "salary", "update"),
			handler.UpsertStructure,
		)
		salaries.POST("/:employeeId/components",
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, "salary", "update"),
			middleware.Idempotency(rdb),
			handler.AddComponent,
		)
		salaries.PATCH("/:employeeId/components/:componentId",
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, "salary", "update"),
			handler.UpdateComponent,
		)
		salaries.DELETE("/:employeeId/components/:componentId",
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, "salary", "update"),
			handler.DeleteComponent,
		)
	}
}
