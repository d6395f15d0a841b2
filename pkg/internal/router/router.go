// Package router 管理路由配置，用于设置HTTP服务的路由规则.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yasameenmsa/talentvault/pkg/internal/handle"
)

// RegisterAll 注册全部业务路由：/api/v1 下的文件与简历接口，
// 以及根路径下兼容历史前端的原始文件路由.
func RegisterAll(e *gin.Engine) {
	v1 := e.Group("/api/v1")
	{
		RegisterFilesRoutes(v1)
		RegisterCVRoutes(v1)
		RegisterHealthCheckRoute(v1)
		RegisterStatsRoutes(v1)
		RegisterSchedulerRoutes(v1)
	}

	RegisterRawFileRoutes(e)
}

// RegisterRawFileRoutes 注册按路径取文件的兼容路由.
// 历史数据里的文件引用有三种写法，公开和遗留两种URL前缀必须原样可访问.
func RegisterRawFileRoutes(e *gin.Engine) {
	e.GET("/storage/uploads/*filepath", handle.ServeStoredFile)
	e.GET("/uploads/*filepath", handle.ServeLegacyFile)
}
