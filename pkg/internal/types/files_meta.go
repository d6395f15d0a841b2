package types

import "github.com/yasameenmsa/talentvault/pkg/internal/model"

// ListFilesRequest 文件记录列表查询.
type ListFilesRequest struct {
	FileType  string `form:"file_type"  json:"file_type,omitempty"  rule:"omitempty,oneof=cv job-image company-logo profile-image document certificate"`
	UserID    string `form:"user_id"    json:"user_id,omitempty"`
	JobID     string `form:"job_id"     json:"job_id,omitempty"`
	CompanyID string `form:"company_id" json:"company_id,omitempty"`
	Limit     int    `form:"limit"      json:"limit,omitempty"      rule:"omitempty,gt=0,lte=200"`
	Offset    int    `form:"offset"     json:"offset,omitempty"     rule:"omitempty,gte=0"`
}

// ListFilesResponse 文件记录列表响应.
type ListFilesResponse struct {
	Files []model.FileRecord `json:"files"`
	Total int64              `json:"total"`
}

// UpdateFileRequest 文件元数据更新请求，仅提交的字段生效.
type UpdateFileRequest struct {
	FileName *string        `json:"file_name,omitempty"` // 重命名下载文件名，不移动物理文件
	IsPublic *bool          `json:"is_public,omitempty"` // 切换可见性，不迁移存储根
	Metadata map[string]any `json:"metadata,omitempty"`  // 合并写入开放元数据
}

// DeleteFileResponse 单个文件删除响应.
type DeleteFileResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
	// 物理文件删除失败时为 false，记录仍会删除并发补偿事件
	FileRemoved bool   `json:"file_removed"`
	Warning     string `json:"warning,omitempty"`
}

// BulkDeleteRequest 批量删除请求.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" rule:"required,min=1,max=100,dive,required"`
}

// BulkDeleteResponse 批量删除响应.
type BulkDeleteResponse struct {
	Results []DeleteFileResponse `json:"results"`
	Deleted int                  `json:"deleted"`
	Failed  int                  `json:"failed"`
}
