package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yasameenmsa/talentvault/pkg/internal/handle"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	"github.com/yasameenmsa/talentvault/pkg/middleware"
)

// RegisterStatsRoutes 注册存储统计路由，仅管理员.
func RegisterStatsRoutes(g *gin.RouterGroup) {
	statsRoutes := g.Group("/stats")
	statsRoutes.Use(middleware.RequireMinRole(types.RoleAdmin))
	{
		statsRoutes.GET("/storage", handle.StorageStats)
	}
}
