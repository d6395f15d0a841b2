package handle

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yasameenmsa/talentvault/pkg/internal/service"
	"github.com/yasameenmsa/talentvault/pkg/middleware"
)

// DownloadFile 按记录ID下载文件，?view=true 内联预览.
func DownloadFile(c *gin.Context) {
	ctx := c.Request.Context()
	svc := service.NewFileService(ctx)

	view := c.Query("view") == "true"

	res, err := svc.DownloadByID(ctx, middleware.GetPrincipal(c), c.Param("id"), view)
	if err != nil {
		respondError(c, err)
		return
	}

	// download=true 压过图片默认内联
	if c.Query("download") == "true" {
		res.Inline = false
	}

	writeDownload(c, res)
}

// ServeStoredFile 按URL路径提供文件，挂在 /storage/uploads/*filepath 上.
func ServeStoredFile(c *gin.Context) {
	serveByPath(c, "/storage/uploads"+c.Param("filepath"))
}

// ServeLegacyFile 按遗留URL路径提供文件，挂在 /uploads/*filepath 上.
func ServeLegacyFile(c *gin.Context) {
	serveByPath(c, "/uploads"+c.Param("filepath"))
}

func serveByPath(c *gin.Context, rawPath string) {
	// 通配路由不经过 gin 的路径清理，这里拒绝目录穿越
	if strings.Contains(rawPath, "..") {
		respondError(c, service.ErrFileMissing)
		return
	}

	ctx := c.Request.Context()
	svc := service.NewFileService(ctx)

	view := c.Query("view") == "true"

	res, err := svc.DownloadByPath(ctx, middleware.GetPrincipal(c), rawPath, view)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("download") == "true" {
		res.Inline = false
	}

	writeDownload(c, res)
}
