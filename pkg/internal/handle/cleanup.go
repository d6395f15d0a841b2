package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yasameenmsa/talentvault/pkg/internal/service"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
)

// CleanupFiles 手动触发一轮过期文件清理（仅管理员路由组挂载）.
func CleanupFiles(c *gin.Context) {
	var req types.CleanupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	svc := service.NewFileService(ctx)

	res, err := svc.ReclaimOlderThan(ctx, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
