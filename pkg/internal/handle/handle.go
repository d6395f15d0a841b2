// Package handle 提供HTTP请求处理器.
package handle

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/yasameenmsa/talentvault/pkg/internal/service"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	"github.com/yasameenmsa/talentvault/pkg/log"
)

// respondError 把业务层错误映射为HTTP状态码.
// 记录缺失和物理文件缺失都是404，但错误消息区分两种情况.
func respondError(c *gin.Context, err error) {
	switch {
	case service.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	case errors.Is(err, service.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "file record not found"})
	case errors.Is(err, service.ErrFileMissing):
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found on storage"})
	default:
		log.Logger().Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// writeDownload 输出下载结果，文件名按 RFC 5987 编码以兼容非ASCII.
func writeDownload(c *gin.Context, res *types.DownloadResult) {
	disposition := "attachment"
	if res.Inline {
		disposition = "inline"
	}

	c.Header("Content-Disposition",
		fmt.Sprintf("%s; filename*=UTF-8''%s", disposition, url.PathEscape(res.FileName)))

	if res.CachePublic {
		c.Header("Cache-Control", "public, max-age=3600")
	} else {
		c.Header("Cache-Control", "private, no-cache")
	}

	c.Data(http.StatusOK, res.MimeType, res.Data)
}
