package types

// CleanupRequest 过期文件清理请求.
type CleanupRequest struct {
	Directory     string `form:"directory"       json:"directory"       rule:"required"`
	OlderThanDays int    `form:"older_than_days" json:"older_than_days" rule:"required,gt=0"`
}

// CleanupResult 清理执行结果.
type CleanupResult struct {
	Directory      string `json:"directory"`
	OlderThanDays  int    `json:"older_than_days"`
	DeletedFiles   int    `json:"deleted_files"`
	RemainingFiles int    `json:"remaining_files"`
	SpaceFreed     int64  `json:"space_freed"`
	SpaceFreedHum  string `json:"space_freed_human"`
	RecordsDeleted int64  `json:"records_deleted"` // 随文件一并回收的元数据行数
}
