package model

import (
	"time"
)

// FileType 文件业务类别.
type FileType string

const (
	FileTypeCV           FileType = "cv"
	FileTypeJobImage     FileType = "job-image"
	FileTypeCompanyLogo  FileType = "company-logo"
	FileTypeProfileImage FileType = "profile-image"
	FileTypeDocument     FileType = "document"
	FileTypeCertificate  FileType = "certificate"
)

// Valid 判断类别是否已知.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeCV, FileTypeJobImage, FileTypeCompanyLogo,
		FileTypeProfileImage, FileTypeDocument, FileTypeCertificate:
		return true
	}

	return false
}

// Public 判断类别是否默认公开（写入公开根目录）.
func (t FileType) Public() bool {
	switch t {
	case FileTypeJobImage, FileTypeCompanyLogo, FileTypeProfileImage:
		return true
	}

	return false
}

// Subdir 返回类别对应的存储子目录.
func (t FileType) Subdir() string {
	switch t {
	case FileTypeCV:
		return "cvs"
	case FileTypeJobImage:
		return "jobs"
	case FileTypeCompanyLogo:
		return "companies"
	case FileTypeProfileImage:
		return "profiles"
	case FileTypeCertificate:
		return "certificates"
	case FileTypeDocument:
		fallthrough
	default:
		return "documents"
	}
}

// FileRecord 文件元数据模型.
type FileRecord struct {
	// ULID，按时间有序
	ID string `gorm:"size:26;primaryKey" json:"id"`
	// 落盘后的存储文件名（含时间戳前缀）
	FileName string `gorm:"size:512;index" json:"file_name"`
	// 上传时的原始文件名
	OriginalName string `gorm:"size:512" json:"original_name"`
	// 对外的逻辑URL（公开前缀或私有相对路径）
	URL string `gorm:"size:1024;index" json:"url"`
	// 物理路径（相对BaseDir），和 URL 互为映射
	FilePath string   `gorm:"size:1024;index" json:"file_path"`
	Size     int64    `gorm:"index"           json:"size"`
	MimeType string   `gorm:"size:255"        json:"mime_type"`
	FileType FileType `gorm:"size:64;index"   json:"file_type"`
	// 上传者与可选的业务归属
	UploadedBy string `gorm:"size:255;index" json:"uploaded_by"`
	UserID     string `gorm:"size:255;index" json:"user_id,omitempty"`
	JobID      string `gorm:"size:255;index" json:"job_id,omitempty"`
	CompanyID  string `gorm:"size:255;index" json:"company_id,omitempty"`
	IsPublic   bool   `gorm:"index"          json:"is_public"`
	// 开放元数据，JSON 字符串存储；未来可替换为 JSONB
	MetadataJSON string `gorm:"type:text" json:"metadata_json,omitempty"`
	// 审计；记录删除即物理删行，不做软删除
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名.
func (FileRecord) TableName() string { return "file_records" }
