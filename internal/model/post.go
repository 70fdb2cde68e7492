package model

import "time"

// Post 达人发布的内容及互动数据
type Post struct {
	InfluencerID string    `json:"influencer_id" validate:"required"`
	Platform     string    `json:"platform"`
	Date         time.Time `json:"date"`
	URL          string    `json:"url"`
	Caption      string    `json:"caption"`
	Reach        int64     `json:"reach" validate:"min=0"`
	Likes        int64     `json:"likes" validate:"min=0"`
	Comments     int64     `json:"comments" validate:"min=0"`
}
