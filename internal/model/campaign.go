package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignRecord 投放追踪记录
type CampaignRecord struct {
	Source       string          `json:"source"`
	Campaign     string          `json:"campaign"`
	InfluencerID string          `json:"influencer_id" validate:"required"`
	UserID       string          `json:"user_id"`
	Product      string          `json:"product"`
	Date         time.Time       `json:"date"`
	Orders       int64           `json:"orders" validate:"min=0"`
	Revenue      decimal.Decimal `json:"revenue"`
	Brand        string          `json:"brand"`
	Cost         decimal.Decimal `json:"cost"`
	ROI          Ratio           `json:"roi"`
	ROAS         float64         `json:"roas"`
}

// Derive 计算 roi 与 roas
// roas 分母固定加 1，与历史报表口径保持一致
func (c *CampaignRecord) Derive() {
	c.ROI = ROI(c.Revenue, c.Cost)
	c.ROAS = ROAS(c.Revenue, c.Cost)
}

// ROI revenue / cost，cost 为 0 时无定义
func ROI(revenue, cost decimal.Decimal) Ratio {
	if cost.IsZero() {
		return UndefinedRatio()
	}
	return DefinedRatio(revenue.InexactFloat64() / cost.InexactFloat64())
}

// ROAS revenue / (cost + 1)
func ROAS(revenue, cost decimal.Decimal) float64 {
	return revenue.InexactFloat64() / (cost.InexactFloat64() + 1)
}
