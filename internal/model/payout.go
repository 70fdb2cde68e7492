package model

import "github.com/shopspring/decimal"

const (
	BasisOrder = "order"
	BasisPost  = "post"
)

// Payout 达人结算条款
type Payout struct {
	InfluencerID string          `json:"influencer_id" validate:"required"`
	Basis        string          `json:"basis" validate:"oneof=order post"`
	Rate         decimal.Decimal `json:"rate"`
	Orders       int64           `json:"orders" validate:"min=0"`
	TotalPayout  decimal.Decimal `json:"total_payout"`
}

// Derive 计算 total_payout
// 按单结算: rate * orders；按帖结算: 固定 rate，不看 orders
func (p *Payout) Derive() {
	if p.Basis == BasisOrder {
		p.TotalPayout = p.Rate.Mul(decimal.NewFromInt(p.Orders))
		return
	}
	p.TotalPayout = p.Rate
}
