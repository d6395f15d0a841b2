// Package fs 处理本地文件系统存储操作.
//
// Client 基于 afero 抽象文件系统，生产环境使用 OsFs，
// 测试可注入 MemMapFs，使上传/下载/清理逻辑无需真实磁盘.
package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/yasameenmsa/talentvault/pkg/configs"
	tlog "github.com/yasameenmsa/talentvault/pkg/log"
)

const defaultDirMode = 0o755

// Client 包装 afero 文件系统与路径解析器.
type Client struct {
	afero.Fs

	resolver *Resolver
	cfg      *configs.StorageConfig
}

// New 创建基于操作系统文件系统的客户端，并确保两个根目录存在.
func New(cfg *configs.StorageConfig) (*Client, error) {
	return NewWithFs(cfg, afero.NewOsFs())
}

// NewWithFs 使用指定的 afero 文件系统创建客户端，测试时注入 MemMapFs.
func NewWithFs(cfg *configs.StorageConfig, fsys afero.Fs) (*Client, error) {
	c := &Client{
		Fs:       fsys,
		resolver: NewResolver(cfg),
		cfg:      cfg,
	}

	for _, dir := range []string{cfg.PublicDir(), cfg.PrivateDir(), cfg.LegacyDir()} {
		if err := c.Fs.MkdirAll(dir, defaultDirMode); err != nil {
			return nil, fmt.Errorf("ensure storage root %s: %w", dir, err)
		}
	}

	tlog.Logger().Info().
		Str("public", cfg.PublicDir()).
		Str("private", cfg.PrivateDir()).
		Str("legacy", cfg.LegacyDir()).
		Msg("本地存储初始化完成")

	return c, nil
}

// Resolver 返回路径解析器.
func (c *Client) Resolver() *Resolver {
	return c.resolver
}

// GetConfig 返回存储配置.
func (c *Client) GetConfig() *configs.StorageConfig {
	return c.cfg
}

// EnsureDir 幂等创建目录.
func (c *Client) EnsureDir(dir string) error {
	return c.Fs.MkdirAll(dir, defaultDirMode)
}

// WriteFile 将完整内容写入物理路径，父目录不存在时先创建.
func (c *Client) WriteFile(path string, data []byte) error {
	if err := c.Fs.MkdirAll(filepath.Dir(path), defaultDirMode); err != nil {
		return fmt.Errorf("ensure parent dir of %s: %w", path, err)
	}

	return afero.WriteFile(c.Fs, path, data, 0o644)
}

// ReadFile 读出文件的全部字节.
func (c *Client) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(c.Fs, path)
}

// Stat 返回文件信息.
func (c *Client) Stat(path string) (os.FileInfo, error) {
	return c.Fs.Stat(path)
}

// Exists 判断物理路径是否存在.
func (c *Client) Exists(path string) (bool, error) {
	return afero.Exists(c.Fs, path)
}

// Remove 删除单个文件.
func (c *Client) Remove(path string) error {
	return c.Fs.Remove(path)
}

// ReadDir 列出目录项.
func (c *Client) ReadDir(dir string) ([]os.FileInfo, error) {
	return afero.ReadDir(c.Fs, dir)
}

// Walk 遍历目录树.
func (c *Client) Walk(root string, walkFn func(path string, info os.FileInfo, err error) error) error {
	return afero.Walk(c.Fs, root, walkFn)
}

// Chtimes 修改文件时间戳，清理测试用.
func (c *Client) Chtimes(path string, atime, mtime time.Time) error {
	return c.Fs.Chtimes(path, atime, mtime)
}

// HealthCheck 通过 stat 私有根目录验证存储可用.
func (c *Client) HealthCheck() error {
	if _, err := c.Fs.Stat(c.cfg.PrivateDir()); err != nil {
		return fmt.Errorf("storage root unavailable: %w", err)
	}

	return nil
}

// Close 关闭客户端（无实际操作，接口兼容）.
func (c *Client) Close() error {
	return nil
}

var _ io.Closer = (*Client)(nil)
