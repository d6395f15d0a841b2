package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yasameenmsa/talentvault/pkg/internal/service"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	"github.com/yasameenmsa/talentvault/pkg/middleware"
)

// DropCV 免登录简历投递（multipart，文件字段 cv）.
func DropCV(c *gin.Context) {
	var form types.DropCVForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name, data, ok := readMultipartFile(c, "cv")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	svc := service.NewFileService(ctx)

	resp, err := svc.DropCV(ctx, &form, name, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListCVs 列出简历投递记录.
func ListCVs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	ctx := c.Request.Context()
	svc := service.NewFileService(ctx)

	resp, err := svc.ListCVs(ctx, middleware.GetPrincipal(c), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DownloadCV 下载一份投递的简历.
func DownloadCV(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cv id"})
		return
	}

	ctx := c.Request.Context()
	svc := service.NewFileService(ctx)

	res, err := svc.DownloadCV(ctx, middleware.GetPrincipal(c), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	writeDownload(c, res)
}
