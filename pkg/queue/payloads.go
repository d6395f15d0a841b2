package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// -------------------------- 文件存储领域 --------------------------

// FileRef 标识一条文件记录及其物理位置.
type FileRef struct {
	ID       string `json:"id,omitempty"` // 元数据记录ID，遗留路径删除时可为空
	Path     string `json:"path"`         // 物理路径（相对BaseDir）
	URL      string `json:"url,omitempty"`
	Size     int64  `json:"size,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	FileType string `json:"file_type,omitempty"`
}

// FileStoredPayload 文件已写入磁盘且元数据入库.
type FileStoredPayload struct {
	File       FileRef `json:"file"`
	UploadedBy string  `json:"uploaded_by,omitempty"`
	UserID     string  `json:"user_id,omitempty"`
	JobID      string  `json:"job_id,omitempty"`
}

// FileDeletedPayload 文件元数据已删除.
type FileDeletedPayload struct {
	File      FileRef `json:"file"`
	DeletedBy string  `json:"deleted_by,omitempty"`
}

// UnlinkFailedPayload 元数据删除成功但物理文件删除失败，留给后台对账.
type UnlinkFailedPayload struct {
	File   FileRef `json:"file"`
	Reason string  `json:"reason"`
}

// -------------------------- 清理领域 --------------------------

// CleanupCompletedPayload 一轮清理的统计结果.
type CleanupCompletedPayload struct {
	Directory      string `json:"directory"`
	OlderThanDays  int    `json:"older_than_days"`
	DeletedFiles   int    `json:"deleted_files"`
	RemainingFiles int    `json:"remaining_files"`
	SpaceFreed     int64  `json:"space_freed"`
	RecordsDeleted int64  `json:"records_deleted"`
}
