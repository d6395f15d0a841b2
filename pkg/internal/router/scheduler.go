package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yasameenmsa/talentvault/pkg/internal/handle"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	"github.com/yasameenmsa/talentvault/pkg/middleware"
)

// RegisterSchedulerRoutes 注册调度器管理路由，仅管理员.
func RegisterSchedulerRoutes(g *gin.RouterGroup) {
	schedRoutes := g.Group("/scheduler")
	schedRoutes.Use(middleware.RequireMinRole(types.RoleAdmin))
	{
		schedRoutes.GET("/jobs", handle.SchedulerJobs)
		schedRoutes.POST("/jobs/stop", handle.SchedulerStopJobs)
		schedRoutes.DELETE("/jobs/:id", handle.SchedulerRemoveJob)
	}
}
