package types

// DownloadQuery 下载请求查询参数.
type DownloadQuery struct {
	View bool `form:"view" json:"view,omitempty"` // 内联预览而非附件下载
}

// DownloadResult 下载结果：全量读入内存后交给handler写出.
type DownloadResult struct {
	Data        []byte `json:"-"`
	FileName    string `json:"file_name"` // 响应头中的下载文件名（原始名）
	MimeType    string `json:"mime_type"`
	Size        int64  `json:"size"`
	Inline      bool   `json:"-"` // 图片或显式 view=true 时内联展示
	CachePublic bool   `json:"-"` // 公开文件允许共享缓存
}
