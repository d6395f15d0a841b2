package fs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yasameenmsa/talentvault/pkg/configs"
)

func testStorageConfig() *configs.StorageConfig {
	return &configs.StorageConfig{
		BaseDir:         "/srv/app",
		PublicRoot:      "public/storage/uploads",
		PrivateRoot:     "storage/uploads",
		LegacyRoot:      "public/uploads",
		PublicURLPrefix: "/storage/uploads",
		LegacyURLPrefix: "/uploads",
		MaxUploadSize:   5 << 20,
	}
}

// TestResolve 覆盖三套路径约定与兜底规则.
func TestResolve(t *testing.T) {
	r := NewResolver(testStorageConfig())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "public url prefix",
			in:   "/storage/uploads/jobs/logo.png",
			want: filepath.Join("/srv/app", "public/storage/uploads", "jobs/logo.png"),
		},
		{
			name: "private relative path",
			in:   "storage/uploads/cvs/cv_1.pdf",
			want: filepath.Join("/srv/app", "storage/uploads", "cvs/cv_1.pdf"),
		},
		{
			name: "legacy url prefix",
			in:   "/uploads/old_cv.pdf",
			want: filepath.Join("/srv/app", "public/uploads", "old_cv.pdf"),
		},
		{
			name: "bare relative fallback",
			in:   "tmp/report.pdf",
			want: filepath.Join("/srv/app", "tmp/report.pdf"),
		},
		{
			name: "empty input",
			in:   "",
			want: "/srv/app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.in))
		})
	}
}

// TestResolveIdempotent 绝对路径重复解析保持不变.
func TestResolveIdempotent(t *testing.T) {
	r := NewResolver(testStorageConfig())

	abs := r.Resolve("/storage/uploads/jobs/logo.png")
	assert.True(t, filepath.IsAbs(abs))
	assert.Equal(t, abs, r.Resolve(abs))
	assert.Equal(t, abs, r.Resolve(r.Resolve(abs)))
}

// TestResolvePrefixBoundary 前缀匹配必须按路径段对齐.
func TestResolvePrefixBoundary(t *testing.T) {
	r := NewResolver(testStorageConfig())

	// /uploads-old 不是 /uploads 下的路径，走兜底规则
	got := r.Resolve("/uploads-old/file.pdf")
	assert.Equal(t, filepath.Join("/srv/app", "/uploads-old/file.pdf"), got)
}

// TestToURL 物理路径反向映射为逻辑URL.
func TestToURL(t *testing.T) {
	cfg := testStorageConfig()
	r := NewResolver(cfg)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "public root",
			in:   filepath.Join("/srv/app", "public/storage/uploads", "jobs/logo.png"),
			want: "/storage/uploads/jobs/logo.png",
		},
		{
			name: "legacy root",
			in:   filepath.Join("/srv/app", "public/uploads", "old_cv.pdf"),
			want: "/uploads/old_cv.pdf",
		},
		{
			name: "private root",
			in:   filepath.Join("/srv/app", "storage/uploads", "cvs/cv_1.pdf"),
			want: "storage/uploads/cvs/cv_1.pdf",
		},
		{
			name: "unknown path returned unchanged",
			in:   "/etc/passwd",
			want: "/etc/passwd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ToURL(tt.in))
		})
	}
}

// TestRoundTrip Resolve 和 ToURL 互为逆映射.
func TestRoundTrip(t *testing.T) {
	r := NewResolver(testStorageConfig())

	for _, url := range []string{
		"/storage/uploads/companies/logo.png",
		"/uploads/cv_legacy.doc",
		"storage/uploads/cvs/cv_u1_123.pdf",
	} {
		assert.Equal(t, url, r.ToURL(r.Resolve(url)))
	}
}

// TestIsCleanupDir 清理只接受公开或遗留前缀目录.
func TestIsCleanupDir(t *testing.T) {
	r := NewResolver(testStorageConfig())

	assert.True(t, r.IsCleanupDir("/uploads/temp"))
	assert.True(t, r.IsCleanupDir("/storage/uploads/jobs"))
	assert.True(t, r.IsCleanupDir("/uploads"))

	assert.False(t, r.IsCleanupDir("storage/uploads/cvs"))
	assert.False(t, r.IsCleanupDir("/etc"))
	assert.False(t, r.IsCleanupDir("/uploads-old"))
}
