package configs

import (
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	DefaultStorageBaseDir         = "."                      // 存储基准目录
	DefaultStoragePublicRoot      = "public/storage/uploads" // 公开文件根目录
	DefaultStoragePrivateRoot     = "storage/uploads"        // 私有文件根目录
	DefaultStorageLegacyRoot      = "public/uploads"         // 历史遗留上传根目录
	DefaultStoragePublicURLPrefix = "/storage/uploads"       // 公开文件URL前缀
	DefaultStorageLegacyURLPrefix = "/uploads"               // 历史遗留URL前缀
	DefaultStorageMaxUploadSize   = 5 << 20                  // 上传大小上限（5MB）
)

// StorageConfig 本地文件存储配置：三套路径约定（公开URL、私有相对路径、历史遗留URL）
// 都锚定在 BaseDir 下的两个物理根目录上.
type StorageConfig struct {
	BaseDir         string `mapstructure:"base_dir"`
	PublicRoot      string `mapstructure:"public_root"`
	PrivateRoot     string `mapstructure:"private_root"`
	LegacyRoot      string `mapstructure:"legacy_root"`
	PublicURLPrefix string `mapstructure:"public_url_prefix"`
	LegacyURLPrefix string `mapstructure:"legacy_url_prefix"`
	MaxUploadSize   int64  `mapstructure:"max_upload_size"   rule:"min=1"`
}

// PublicDir 返回公开根目录的完整路径.
func (c *StorageConfig) PublicDir() string {
	return filepath.Join(c.BaseDir, c.PublicRoot)
}

// PrivateDir 返回私有根目录的完整路径.
func (c *StorageConfig) PrivateDir() string {
	return filepath.Join(c.BaseDir, c.PrivateRoot)
}

// LegacyDir 返回历史遗留根目录的完整路径.
func (c *StorageConfig) LegacyDir() string {
	return filepath.Join(c.BaseDir, c.LegacyRoot)
}

// setDefaults 设置存储配置的默认值.
func (c *StorageConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("storage.base_dir", DefaultStorageBaseDir)
	v.SetDefault("storage.public_root", DefaultStoragePublicRoot)
	v.SetDefault("storage.private_root", DefaultStoragePrivateRoot)
	v.SetDefault("storage.legacy_root", DefaultStorageLegacyRoot)
	v.SetDefault("storage.public_url_prefix", DefaultStoragePublicURLPrefix)
	v.SetDefault("storage.legacy_url_prefix", DefaultStorageLegacyURLPrefix)
	v.SetDefault("storage.max_upload_size", DefaultStorageMaxUploadSize)
}
