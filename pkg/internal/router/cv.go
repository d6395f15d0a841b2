package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yasameenmsa/talentvault/pkg/internal/handle"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	"github.com/yasameenmsa/talentvault/pkg/middleware"
)

// RegisterCVRoutes 注册简历投递路由：投递免登录，查阅仅管理员.
func RegisterCVRoutes(g *gin.RouterGroup) {
	// 旧版投递路径保持原样
	g.POST("/drop-cv", handle.DropCV)

	cvRoutes := g.Group("/cvs")
	{
		adminGroup := cvRoutes.Group("")
		adminGroup.Use(middleware.RequireMinRole(types.RoleAdmin))
		{
			adminGroup.GET("", handle.ListCVs)
			adminGroup.GET("/:id/download", handle.DownloadCV)
		}
	}
}
