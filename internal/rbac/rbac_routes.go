package rbac

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the rbac endpoints on an already authenticated
// group. reloadGuard decides who may reload the policy.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, reloadGuard gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.POST("/enforce", handler.Enforce)
	group.POST("/reload", reloadGuard, handler.Reload)
}
