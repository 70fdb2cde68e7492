package model

// Influencer 达人档案，整个会话内只读
// 只有 ID 参与连接，名称、平台、垂类允许为空
type Influencer struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"influencer_name"`
	Platform  string `json:"platform"`
	Niche     string `json:"niche"`
	Followers int64  `json:"followers" validate:"min=0"`
	Gender    string `json:"gender"`
}
