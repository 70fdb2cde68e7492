package model

import "time"

// Session 单个浏览器会话持有的数据集
type Session struct {
	ID        string    `json:"id"`
	Tables    *Tables   `json:"tables"`
	Origin    string    `json:"origin"`
	Fallback  bool      `json:"fallback"`
	Warning   string    `json:"warning"`
	UpdatedAt time.Time `json:"updated_at"`
}
