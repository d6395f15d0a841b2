package fs

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMemClient 创建内存文件系统客户端.
func newMemClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewWithFs(testStorageConfig(), afero.NewMemMapFs())
	require.NoError(t, err)

	return c
}

// TestNewEnsuresRoots 初始化时确保三个根目录存在.
func TestNewEnsuresRoots(t *testing.T) {
	c := newMemClient(t)

	for _, dir := range []string{
		c.cfg.PublicDir(),
		c.cfg.PrivateDir(),
		c.cfg.LegacyDir(),
	} {
		info, err := c.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

// TestWriteReadRemove 基本读写删流程.
func TestWriteReadRemove(t *testing.T) {
	c := newMemClient(t)

	path := c.Resolver().Resolve("storage/uploads/cvs/cv_u1_1.pdf")
	require.NoError(t, c.EnsureDir(c.cfg.PrivateDir()+"/cvs"))
	require.NoError(t, c.WriteFile(path, []byte("%PDF-1.4 test")))

	data, err := c.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 test"), data)

	exists, err := c.Exists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, c.Remove(path))

	exists, err = c.Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)
}

// TestChtimes 时间戳可修改，供清理逻辑测试使用.
func TestChtimes(t *testing.T) {
	c := newMemClient(t)

	path := c.Resolver().Resolve("/uploads/old.pdf")
	require.NoError(t, c.WriteFile(path, []byte("x")))

	old := time.Now().AddDate(0, 0, -40)
	require.NoError(t, c.Chtimes(path, old, old))

	info, err := c.Stat(path)
	require.NoError(t, err)
	assert.WithinDuration(t, old, info.ModTime(), time.Second)
}

// TestHealthCheck 私有根缺失时健康检查报错.
func TestHealthCheck(t *testing.T) {
	c := newMemClient(t)
	assert.NoError(t, c.HealthCheck())

	require.NoError(t, c.Fs.RemoveAll(c.cfg.PrivateDir()))
	assert.Error(t, c.HealthCheck())
}
