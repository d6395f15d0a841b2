package types

// DirStats 单个存储根目录的统计.
type DirStats struct {
	Root      string `json:"root"`
	Files     int    `json:"files"`
	Bytes     int64  `json:"bytes"`
	BytesHum  string `json:"bytes_human"`
}

// StorageStatsResponse 存储统计响应.
type StorageStatsResponse struct {
	Dirs       []DirStats `json:"dirs"`
	TotalFiles int        `json:"total_files"`
	TotalBytes int64      `json:"total_bytes"`
	TotalHum   string     `json:"total_bytes_human"`
	Records    int64      `json:"records"` // 元数据行数，供与磁盘文件数对账
}
