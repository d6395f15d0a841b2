package handle

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yasameenmsa/talentvault/pkg/configs"
	"github.com/yasameenmsa/talentvault/pkg/internal/service"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	"github.com/yasameenmsa/talentvault/pkg/middleware"
)

// readMultipartFile 从 multipart 表单取出指定字段的文件并整体读入内存.
// 超出上限直接拒绝，不继续读.
func readMultipartFile(c *gin.Context, field string) (string, []byte, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field \"" + field + "\""})
		return "", nil, false
	}

	maxSize := configs.GetConfig().Storage.MaxUploadSize
	if fh.Size > maxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds maximum upload size"})
		return "", nil, false
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot open uploaded file"})
		return "", nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return "", nil, false
	}

	if int64(len(data)) > maxSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds maximum upload size"})
		return "", nil, false
	}

	return fh.Filename, data, true
}

// UploadFile 上传单个文件（multipart，文件字段 file）.
func UploadFile(c *gin.Context) {
	var form types.UploadFileForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name, data, ok := readMultipartFile(c, "file")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	svc := service.NewFileService(ctx)

	resp, err := svc.UploadFile(ctx, middleware.GetPrincipal(c), &form, name, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UploadLegacy 旧版通用上传（multipart，字段 file + type），只返回 url.
// 旧前端继续可用，新代码走 POST /files.
func UploadLegacy(c *gin.Context) {
	var legacy types.LegacyUploadForm
	if err := c.ShouldBind(&legacy); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name, data, ok := readMultipartFile(c, "file")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	svc := service.NewFileService(ctx)

	form := types.UploadFileForm{FileType: legacy.Type, JobID: legacy.JobID}

	resp, err := svc.UploadFile(ctx, middleware.GetPrincipal(c), &form, name, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": resp.URL})
}
