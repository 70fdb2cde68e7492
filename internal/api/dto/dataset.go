package dto

import "time"

// DatasetStatusDTO 会话当前数据集状态
type DatasetStatusDTO struct {
	Origin    string         `json:"origin"`
	Fallback  bool           `json:"fallback"`
	Warning   string         `json:"warning,omitempty"`
	Counts    map[string]int `json:"counts"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ExportFileDTO 导出文件
type ExportFileDTO struct {
	FileName    string
	ContentType string
	Data        []byte
}
