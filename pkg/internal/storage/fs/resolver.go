package fs

import (
	"path/filepath"
	"strings"

	"github.com/yasameenmsa/talentvault/pkg/configs"
)

// Resolver 将三套共存的路径约定统一解析为物理路径：
//   - 公开URL前缀:  /storage/uploads/... -> <base>/public/storage/uploads/...
//   - 私有相对路径: storage/uploads/...  -> <base>/storage/uploads/...
//   - 遗留URL前缀:  /uploads/...         -> <base>/public/uploads/...
//
// 绝对路径原样返回（幂等）；其余输入按相对 BaseDir 兜底.
// Resolver 从不报错，路径是否存在由调用方 stat 判断.
type Resolver struct {
	cfg *configs.StorageConfig
}

// NewResolver 创建路径解析器.
func NewResolver(cfg *configs.StorageConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve 把逻辑存储引用转换为物理路径.
// URL前缀以 "/" 开头，必须先于绝对路径判断匹配.
func (r *Resolver) Resolve(p string) string {
	if p == "" {
		return r.cfg.BaseDir
	}

	if rest, ok := stripPrefix(p, r.cfg.PublicURLPrefix); ok {
		return filepath.Join(r.cfg.BaseDir, r.cfg.PublicRoot, rest)
	}

	if rest, ok := stripPrefix(p, r.cfg.PrivateRoot); ok {
		return filepath.Join(r.cfg.BaseDir, r.cfg.PrivateRoot, rest)
	}

	if rest, ok := stripPrefix(p, r.cfg.LegacyURLPrefix); ok {
		return filepath.Join(r.cfg.BaseDir, r.cfg.LegacyRoot, rest)
	}

	// 已经是物理绝对路径：原样返回，重复调用幂等
	if filepath.IsAbs(p) {
		return p
	}

	// 兜底：视为相对 BaseDir 的路径
	return filepath.Join(r.cfg.BaseDir, p)
}

// ToURL 把物理路径反向映射为逻辑URL；无法识别时返回原值.
func (r *Resolver) ToURL(physical string) string {
	publicDir := filepath.ToSlash(filepath.Join(r.cfg.BaseDir, r.cfg.PublicRoot))
	legacyDir := filepath.ToSlash(filepath.Join(r.cfg.BaseDir, r.cfg.LegacyRoot))
	privateDir := filepath.ToSlash(filepath.Join(r.cfg.BaseDir, r.cfg.PrivateRoot))
	p := filepath.ToSlash(physical)

	if rest, ok := stripPrefix(p, publicDir); ok {
		return r.cfg.PublicURLPrefix + "/" + rest
	}

	if rest, ok := stripPrefix(p, legacyDir); ok {
		return r.cfg.LegacyURLPrefix + "/" + rest
	}

	if rest, ok := stripPrefix(p, privateDir); ok {
		return strings.TrimSuffix(r.cfg.PrivateRoot, "/") + "/" + rest
	}

	return physical
}

// IsCleanupDir 判断目录引用是否携带公开或遗留前缀，清理接口只接受这两类.
func (r *Resolver) IsCleanupDir(dir string) bool {
	if dir == r.cfg.PublicURLPrefix || dir == r.cfg.LegacyURLPrefix {
		return true
	}

	if _, ok := stripPrefix(dir, r.cfg.PublicURLPrefix); ok {
		return true
	}

	_, ok := stripPrefix(dir, r.cfg.LegacyURLPrefix)

	return ok
}

// stripPrefix 匹配 "prefix" 或 "prefix/..."，返回剩余部分.
// 纯前缀匹配会把 /uploads-old 误判为 /uploads，这里要求边界是路径分隔符.
func stripPrefix(p, prefix string) (string, bool) {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return "", false
	}

	if p == prefix {
		return "", true
	}

	if strings.HasPrefix(p, prefix+"/") {
		return strings.TrimPrefix(p[len(prefix)+1:], "/"), true
	}

	return "", false
}
