// Package storage 聚合存储资源：数据库、本地文件系统、KV 缓存与消息队列.
//
// Example:
//
// 初始化
//
//	 ctx := context.Background()
//	 mgr, err := storage.Init(ctx)
//
//		if err != nil {
//		    // 处理错误
//		}
//
// 获取存储客户端
//
//	fsClient := mgr.GetFSClient()
//	dbClient := mgr.GetDBClient()
package storage

import (
	"context"
	"sync"

	"github.com/yasameenmsa/talentvault/pkg/configs"
	dbc "github.com/yasameenmsa/talentvault/pkg/internal/storage/db"
	fsc "github.com/yasameenmsa/talentvault/pkg/internal/storage/fs"
	kvc "github.com/yasameenmsa/talentvault/pkg/internal/storage/kv"
	mqc "github.com/yasameenmsa/talentvault/pkg/internal/storage/mq"
	tlog "github.com/yasameenmsa/talentvault/pkg/log"
)

// Manager 聚合所有存储资源.
type Manager struct {
	DB *dbc.Client
	FS *fsc.Client
	KV *kvc.Client
	MQ *mqc.Client
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init 初始化默认存储，使用全局配置.重复调用只返回已初始化实例.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		cfg := configs.GetConfig()
		m := &Manager{}

		// DB
		if dbi, e := dbc.New(ctx, &cfg.DB); e != nil {
			err = e

			return
		} else {
			m.DB = dbi
		}

		// 本地文件系统
		if fsi, e := fsc.New(&cfg.Storage); e != nil {
			err = e

			return
		} else {
			m.FS = fsi
		}

		// KV
		if kvi, e := kvc.NewKVClient(ctx, &cfg.KV); e != nil {
			err = e

			return
		} else {
			m.KV = kvi
		}

		// MQ
		if mqi, e := mqc.New(ctx, &cfg.MQ); e != nil {
			err = e

			return
		} else {
			m.MQ = mqi
		}

		mgr = m

		tlog.Logger().Info().Msg("storage manager initialized")
	})

	return mgr, err
}

// NewManager 按注入的客户端组装 Manager，测试用.
func NewManager(db *dbc.Client, fs *fsc.Client, kv *kvc.Client, mq *mqc.Client) *Manager {
	return &Manager{DB: db, FS: fs, KV: kv, MQ: mq}
}

// GetDBClient 获取 DB 客户端.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetFSClient 获取本地文件系统客户端.
func (m *Manager) GetFSClient() *fsc.Client {
	return m.FS
}

// GetKVClient 获取 KV 客户端.
func (m *Manager) GetKVClient() *kvc.Client {
	return m.KV
}

// GetMQClient 获取 MQ 客户端.
func (m *Manager) GetMQClient() *mqc.Client {
	return m.MQ
}
