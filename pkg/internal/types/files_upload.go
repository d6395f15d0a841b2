package types

import "github.com/yasameenmsa/talentvault/pkg/internal/model"

// UploadFileForm 文件上传表单（multipart，文件字段名为 file）.
type UploadFileForm struct {
	FileType  string `form:"file_type"  json:"file_type"            rule:"required,oneof=cv job-image company-logo profile-image document certificate"`
	JobID     string `form:"job_id"     json:"job_id,omitempty"`     // 可选：关联职位
	CompanyID string `form:"company_id" json:"company_id,omitempty"` // 可选：关联公司
	UserID    string `form:"user_id"    json:"user_id,omitempty"`    // 可选：文件归属用户，默认为上传者
}

// LegacyUploadForm 旧版通用上传表单（multipart，文件字段名为 file）.
// type 与 file_type 同值域，响应只回 url.
type LegacyUploadForm struct {
	Type  string `form:"type"   json:"type"             rule:"required,oneof=cv job-image company-logo profile-image document certificate"`
	JobID string `form:"job_id" json:"job_id,omitempty"`
}

// UploadFileResponse 单个文件上传响应.
type UploadFileResponse struct {
	ID           string         `json:"id"`
	FileName     string         `json:"file_name"`
	OriginalName string         `json:"original_name"`
	URL          string         `json:"url"`
	Size         int64          `json:"size"`
	MimeType     string         `json:"mime_type"`
	FileType     model.FileType `json:"file_type"`
	IsPublic     bool           `json:"is_public"`
}
