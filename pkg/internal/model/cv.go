package model

import "time"

// CV 遗留的简历投递记录：drop-CV 漏斗直接落一条裸路径，
// 不经过 FileRecord；下载路由对其做特殊处理.
type CV struct {
	ID           uint      `gorm:"primaryKey"      json:"id"`
	Name         string    `gorm:"size:255"        json:"name"`
	Email        string    `gorm:"size:255;index"  json:"email"`
	JobID        string    `gorm:"size:255;index"  json:"job_id,omitempty"`
	Path         string    `gorm:"size:1024"       json:"path"` // 私有相对路径，历史数据可能带遗留前缀
	OriginalName string    `gorm:"size:512"        json:"original_name"`
	Size         int64     `json:"size"`
	MimeType     string    `gorm:"size:255"        json:"mime_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName 指定表名.
func (CV) TableName() string { return "cvs" }
