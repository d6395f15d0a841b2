package types

import "github.com/yasameenmsa/talentvault/pkg/internal/model"

// DropCVForm 免登录投递简历表单（multipart，文件字段名为 cv）.
type DropCVForm struct {
	Name  string `form:"name"   json:"name"             rule:"required,max=255"`
	Email string `form:"email"  json:"email"            rule:"required,email"`
	JobID string `form:"job_id" json:"job_id,omitempty"` // 可选：目标职位
}

// DropCVResponse 简历投递响应.
type DropCVResponse struct {
	ID           uint   `json:"id"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
}

// ListCVsResponse 简历投递列表响应（仅管理员）.
type ListCVsResponse struct {
	CVs   []model.CV `json:"cvs"`
	Total int64      `json:"total"`
}
