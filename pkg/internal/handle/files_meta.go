package handle

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yasameenmsa/talentvault/pkg/internal/service"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	"github.com/yasameenmsa/talentvault/pkg/middleware"
)

// GetFile 查询单条文件记录.
func GetFile(c *gin.Context) {
	ctx := c.Request.Context()
	svc := service.NewFileService(ctx)

	rec, err := svc.GetFile(ctx, middleware.GetPrincipal(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// ListFiles 列出文件记录.
func ListFiles(c *gin.Context) {
	var req types.ListFilesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	svc := service.NewFileService(ctx)

	resp, err := svc.ListFiles(ctx, middleware.GetPrincipal(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateFile 更新文件元数据.
func UpdateFile(c *gin.Context) {
	var req types.UpdateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	svc := service.NewFileService(ctx)

	rec, err := svc.UpdateFile(ctx, middleware.GetPrincipal(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// DeleteFile 删除单条文件记录及物理文件.
func DeleteFile(c *gin.Context) {
	ctx := c.Request.Context()
	svc := service.NewFileService(ctx)

	resp, err := svc.DeleteFile(ctx, middleware.GetPrincipal(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// BulkDeleteFiles 批量删除文件记录.
// 接受 ?ids=a,b,c 查询参数或JSON请求体 {"ids": [...]}.
func BulkDeleteFiles(c *gin.Context) {
	var req types.BulkDeleteRequest

	if raw := c.Query("ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.IDs = append(req.IDs, id)
			}
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	svc := service.NewFileService(ctx)

	resp, err := svc.BulkDeleteFiles(ctx, middleware.GetPrincipal(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
