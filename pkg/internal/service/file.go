// Package service 实现文件存储子系统的业务逻辑.
package service

import (
	"context"
	crand "crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yasameenmsa/talentvault/pkg/cache"
	ctxPkg "github.com/yasameenmsa/talentvault/pkg/context"
	"github.com/yasameenmsa/talentvault/pkg/internal/repository"
	"github.com/yasameenmsa/talentvault/pkg/internal/storage/db"
	"github.com/yasameenmsa/talentvault/pkg/internal/storage/fs"
	"github.com/yasameenmsa/talentvault/pkg/internal/storage/mq"
)

// DefaultRecordCacheTTL 元数据缓存时长.
const DefaultRecordCacheTTL = 5 * time.Minute

// FileService 文件上传、下载、元数据与清理的业务入口.
type FileService struct {
	fsClient *fs.Client
	dbClient *db.Client
	mqClient *mq.Client
	files    repository.FileRepository
	cvs      repository.CVRepository
	cache    *cache.Cache
}

// NewFileService 从请求上下文取出存储客户端并组装服务.
func NewFileService(c context.Context) *FileService {
	fsc := ctxPkg.GetFSClient(c)
	dbc := ctxPkg.GetDBClient(c)
	mqc := ctxPkg.GetMQClient(c)
	kvc := ctxPkg.GetKVClient(c)

	s := &FileService{
		fsClient: fsc,
		dbClient: dbc,
		mqClient: mqc,
	}

	if dbc != nil {
		s.files = repository.NewFileRepo(dbc.GetDB())
		s.cvs = repository.NewCVRepo(dbc.GetDB())
	}

	if kvc != nil {
		s.cache = cache.NewCache(kvc)
	}

	return s
}

var (
	ulidEntropy = ulid.Monotonic(crand.Reader, 0)
	ulidMu      sync.Mutex
)

// newFileID 生成按时间有序的 ULID，作为文件记录主键.
func newFileID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), ulidEntropy).String()
}

// sanitizeFileName 把文件名（不含扩展名）压缩成安全字符集：
// 字母数字保留，其余全部折叠为下划线.
func sanitizeFileName(name string) string {
	var b strings.Builder

	b.Grow(len(name))

	lastUnderscore := false

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)

			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
			}

			lastUnderscore = true
		}
	}

	out := strings.Trim(b.String(), "_")
	if out == "" {
		out = "file"
	}

	return out
}

func (s *FileService) recordCacheKey(id string) string {
	return cache.Key("file", id)
}

func (s *FileService) invalidateRecord(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}

	_ = s.cache.Delete(ctx, s.recordCacheKey(id))
}
