package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yasameenmsa/talentvault/pkg/internal/service"
	"github.com/yasameenmsa/talentvault/pkg/middleware"
)

// StorageStats 返回各存储根目录的用量统计.
func StorageStats(c *gin.Context) {
	ctx := c.Request.Context()
	svc := service.NewFileService(ctx)

	resp, err := svc.StorageStats(ctx, middleware.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
