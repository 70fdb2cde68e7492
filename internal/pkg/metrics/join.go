package metrics

import (
	"Pulseboard/internal/model"

	"github.com/shopspring/decimal"
)

// JoinedRow 投放记录与达人信息的内连接结果
type JoinedRow struct {
	model.CampaignRecord
	InfluencerName string `json:"influencer_name"`
	Platform       string `json:"platform"`
	Niche          string `json:"niche"`
	Followers      int64  `json:"followers"`
	Gender         string `json:"gender"`
}

// JoinCampaigns 按达人 ID 内连接，找不到达人的投放记录直接丢弃
// roi/roas 在连接后重新计算，过滤结果不会沿用过期的派生值
func JoinCampaigns(campaigns []model.CampaignRecord, influencers []model.Influencer) []JoinedRow {
	byID := groupInfluencers(influencers)
	out := make([]JoinedRow, 0, len(campaigns))
	for _, c := range campaigns {
		for _, inf := range byID[c.InfluencerID] {
			row := JoinedRow{
				CampaignRecord: c,
				InfluencerName: inf.Name,
				Platform:       inf.Platform,
				Niche:          inf.Niche,
				Followers:      inf.Followers,
				Gender:         inf.Gender,
			}
			row.Derive()
			out = append(out, row)
		}
	}
	return out
}

// FilterJoined 按品牌与商品过滤连接结果
func FilterJoined(rows []JoinedRow, brands, products Selection) []JoinedRow {
	out := make([]JoinedRow, 0, len(rows))
	for _, r := range rows {
		if brands.Contains(r.Brand) && products.Contains(r.Product) {
			out = append(out, r)
		}
	}
	return out
}

// PayoutRow 结算条款与达人信息的内连接结果
type PayoutRow struct {
	InfluencerID   string          `json:"influencer_id"`
	InfluencerName string          `json:"influencer_name"`
	Platform       string          `json:"platform"`
	Basis          string          `json:"basis"`
	Rate           decimal.Decimal `json:"rate"`
	Orders         int64           `json:"orders"`
	TotalPayout    decimal.Decimal `json:"total_payout"`
}

// PayoutJoin 结算与全量达人内连接，不受任何过滤条件影响
func PayoutJoin(payouts []model.Payout, influencers []model.Influencer) []PayoutRow {
	byID := groupInfluencers(influencers)
	out := make([]PayoutRow, 0, len(payouts))
	for _, p := range payouts {
		for _, inf := range byID[p.InfluencerID] {
			out = append(out, PayoutRow{
				InfluencerID:   p.InfluencerID,
				InfluencerName: inf.Name,
				Platform:       inf.Platform,
				Basis:          p.Basis,
				Rate:           p.Rate,
				Orders:         p.Orders,
				TotalPayout:    p.TotalPayout,
			})
		}
	}
	return out
}

func groupInfluencers(influencers []model.Influencer) map[string][]model.Influencer {
	byID := make(map[string][]model.Influencer, len(influencers))
	for _, inf := range influencers {
		byID[inf.ID] = append(byID[inf.ID], inf)
	}
	return byID
}
