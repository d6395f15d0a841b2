package router

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yasameenmsa/talentvault/pkg/configs"
	"github.com/yasameenmsa/talentvault/pkg/internal/model"
	"github.com/yasameenmsa/talentvault/pkg/internal/storage"
	"github.com/yasameenmsa/talentvault/pkg/internal/storage/db"
	"github.com/yasameenmsa/talentvault/pkg/internal/storage/fs"
	"github.com/yasameenmsa/talentvault/pkg/internal/types"
	"github.com/yasameenmsa/talentvault/pkg/middleware"
)

var (
	testPDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF")

	// 最小合法PNG头，足够内容嗅探识别为 image/png
	testPNG = []byte{
		0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a,
		0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R',
		0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
	}
)

// newTestEngine 组装带内存存储的完整路由栈.
func newTestEngine(t *testing.T) (*gin.Engine, *fs.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// 默认值来自 viper，含上传大小上限
	require.NoError(t, configs.InitConfig(t.TempDir()))

	fsClient, err := fs.NewWithFs(&configs.GetConfig().Storage, afero.NewMemMapFs())
	require.NoError(t, err)

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.FileRecord{}, &model.CV{}))

	mgr := storage.NewManager(&db.Client{DB: gormDB}, fsClient, nil, nil)

	e := gin.New()
	e.Use(
		middleware.StorageMiddleware(mgr),
		middleware.AuthMiddleware(configs.AuthConfig{
			Enabled:       true,
			JWTSecret:     "test-secret",
			DevAllowQuery: true,
		}),
	)

	RegisterAll(e)

	return e, fsClient
}

// multipartBody 构造带一个文件和若干字段的 multipart 请求体.
func multipartBody(t *testing.T, fileField, fileName string, data []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile(fileField, fileName)
	require.NoError(t, err)

	_, err = fw.Write(data)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func uploadCV(t *testing.T, e *gin.Engine, user string) types.UploadFileResponse {
	t.Helper()

	body, contentType := multipartBody(t, "file", "resume.pdf", testPDF, map[string]string{"file_type": "cv"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/files?user="+user, body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.UploadFileResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)

	return resp
}

func TestUploadAndDownloadFlow(t *testing.T) {
	e, _ := newTestEngine(t)

	id := uploadCV(t, e, "alice").ID

	// 匿名下载私有简历 → 401
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/files/"+id+"/download", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 其他用户 → 403
	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/files/"+id+"/download?user=mallory", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 本人下载成功，带 RFC 5987 文件名
	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/files/"+id+"/download?user=alice", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testPDF, w.Body.Bytes())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "filename*=UTF-8''resume.pdf")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
}

func TestUploadRequiresAuth(t *testing.T) {
	e, _ := newTestEngine(t)

	body, contentType := multipartBody(t, "file", "resume.pdf", testPDF, map[string]string{"file_type": "cv"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/files", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRawPathRoutes(t *testing.T) {
	e, fsClient := newTestEngine(t)

	// 公开图片经URL前缀匿名可取
	body, contentType := multipartBody(t, "file", "logo.png", testPNG, map[string]string{"file_type": "job-image"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/files?user=alice", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var up types.UploadFileResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &up))
	require.True(t, strings.HasPrefix(up.URL, "/storage/uploads/jobs/"), up.URL)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, up.URL, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testPNG, w.Body.Bytes())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inline")

	// 遗留目录裸文件（无记录）匿名可取
	legacy := filepath.Join(configs.GetConfig().Storage.LegacyDir(), "archive_cv.pdf")
	require.NoError(t, fsClient.WriteFile(legacy, testPDF))

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/archive_cv.pdf", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testPDF, w.Body.Bytes())

	// 物理文件不存在 → 404
	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/storage/uploads/jobs/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 目录穿越直接 404
	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/../secret.txt", nil))
	assert.NotEqual(t, http.StatusOK, w.Code)
}

func TestLegacyUploadRoute(t *testing.T) {
	e, _ := newTestEngine(t)

	body, contentType := multipartBody(t, "file", "resume.pdf", testPDF, map[string]string{"type": "cv"})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload?user=alice", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"url":"storage/uploads/cvs/`)
}

func TestBulkDeleteByQueryIDs(t *testing.T) {
	e, _ := newTestEngine(t)

	a := uploadCV(t, e, "alice").ID
	b := uploadCV(t, e, "alice").ID

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/files?ids="+a+","+b+",missing&user=alice", nil)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp types.BulkDeleteResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Deleted)
	assert.Equal(t, 1, resp.Failed)
}

func TestCleanupRouteAdminOnly(t *testing.T) {
	e, _ := newTestEngine(t)

	body := bytes.NewBufferString(`{"directory":"/uploads/temp","older_than_days":30}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/files/cleanup?user=alice", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	body = bytes.NewBufferString(`{"directory":"/uploads/temp","older_than_days":30}`)
	req = httptest.NewRequest(http.MethodPost, "/api/v1/files/cleanup?user=ops&role=admin", body)
	req.Header.Set("Content-Type", "application/json")

	w = httptest.NewRecorder()
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"deleted_files":0`)
}

func TestDropCVRouteAnonymous(t *testing.T) {
	e, _ := newTestEngine(t)

	body, contentType := multipartBody(t, "cv", "jordan.pdf", testPDF, map[string]string{
		"name":  "Jordan",
		"email": "jordan@example.com",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/drop-cv", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// 查阅仅管理员
	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cvs?user=alice", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cvs?user=ops&role=admin", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list types.ListCVsResponse
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &list))
	assert.EqualValues(t, 1, list.Total)
}

func TestHealthRoute(t *testing.T) {
	e, _ := newTestEngine(t)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), configs.AppName)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/storage", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/db", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// MQ 未初始化
	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health/mq", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
