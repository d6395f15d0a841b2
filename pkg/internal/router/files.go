package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yasameenmsa/talentvault/pkg/internal/handle"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	"github.com/yasameenmsa/talentvault/pkg/middleware"
)

// RegisterFilesRoutes 注册文件操作相关路由.
func RegisterFilesRoutes(g *gin.RouterGroup) {
	// 旧版通用上传入口，只返回url
	g.POST("/upload", middleware.RequireAuth(), handle.UploadLegacy)

	filesRoutes := g.Group("/files")
	{
		// 下载可匿名（公开文件），授权决策在服务层
		filesRoutes.GET("/:id/download", handle.DownloadFile)

		// 其余操作要求登录
		authed := filesRoutes.Group("")
		authed.Use(middleware.RequireAuth())
		{
			authed.POST("", handle.UploadFile)
			authed.GET("", handle.ListFiles)
			authed.GET("/:id", handle.GetFile)
			authed.PUT("/:id", handle.UpdateFile)
			authed.DELETE("/:id", handle.DeleteFile)

			// 批量删除：DELETE /files?ids=a,b 或 DELETE /files/batch 带JSON体
			authed.DELETE("", handle.BulkDeleteFiles)
			authed.DELETE("/batch", handle.BulkDeleteFiles)
		}

		// 清理只开放给管理员
		adminGroup := filesRoutes.Group("/cleanup")
		adminGroup.Use(middleware.RequireMinRole(types.RoleAdmin))
		{
			adminGroup.POST("", handle.CleanupFiles)
		}
	}
}
