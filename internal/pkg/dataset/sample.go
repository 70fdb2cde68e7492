package dataset

import (
	"fmt"
	"time"

	"Pulseboard/internal/model"

	"github.com/shopspring/decimal"
)

// Sample 内置示例数据：5 位达人、10 条帖子、5 条投放、5 条结算
// 每次调用都返回新副本，派生列已计算
func Sample() *model.Tables {
	ids := []string{"IK_01", "IK_02", "IK_03", "IK_04", "IK_05"}
	platforms := []string{"Instagram", "YouTube", "Instagram", "Instagram", "YouTube"}

	influencers := []model.Influencer{
		{ID: "IK_01", Name: "Riya", Platform: "Instagram", Niche: "Nutrition", Followers: 15000, Gender: "F"},
		{ID: "IK_02", Name: "Aman", Platform: "YouTube", Niche: "Fitness", Followers: 50000, Gender: "M"},
		{ID: "IK_03", Name: "Tara", Platform: "Instagram", Niche: "Lifestyle", Followers: 25000, Gender: "F"},
		{ID: "IK_04", Name: "Kunal", Platform: "Instagram", Niche: "Nutrition", Followers: 30000, Gender: "M"},
		{ID: "IK_05", Name: "Neha", Platform: "YouTube", Niche: "Fitness", Followers: 40000, Gender: "F"},
	}

	reach := []int64{13000, 21000, 15000, 20000, 18000, 14500, 22000, 16000, 24000, 17500}
	likes := []int64{1200, 1800, 1400, 2000, 1600, 1250, 1900, 1500, 2100, 1650}
	comments := []int64{75, 120, 90, 150, 100, 80, 130, 95, 160, 110}
	postStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := make([]model.Post, 0, len(reach))
	for i := range reach {
		posts = append(posts, model.Post{
			InfluencerID: ids[i%len(ids)],
			Platform:     platforms[i%len(platforms)],
			Date:         postStart.AddDate(0, 0, i),
			URL:          fmt.Sprintf("https://post/%d", i),
			Caption:      "Great product!",
			Reach:        reach[i],
			Likes:        likes[i],
			Comments:     comments[i],
		})
	}

	campaignStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	campaign := func(i int, source, name, product, brand string, orders, revenue, cost int64) model.CampaignRecord {
		return model.CampaignRecord{
			Source:       source,
			Campaign:     name,
			InfluencerID: ids[i],
			UserID:       fmt.Sprintf("%d", 101+i),
			Product:      product,
			Date:         campaignStart.AddDate(0, 0, i),
			Orders:       orders,
			Revenue:      decimal.NewFromInt(revenue),
			Brand:        brand,
			Cost:         decimal.NewFromInt(cost),
		}
	}
	campaigns := []model.CampaignRecord{
		campaign(0, "Instagram", "MB01", "Whey", "MuscleBlaze", 40, 25000, 6500),
		campaign(1, "YouTube", "GZ01", "Shake", "Gritzo", 10, 1890, 5000),
		campaign(2, "Instagram", "HK01", "Zinc", "HK Vitals", 15, 7200, 3000),
		campaign(3, "Instagram", "GZ02", "Gainer", "Gritzo", 30, 37800, 5200),
		campaign(4, "YouTube", "MB02", "Whey", "MuscleBlaze", 31, 42000, 8000),
	}

	payouts := []model.Payout{
		{InfluencerID: "IK_01", Basis: model.BasisOrder, Rate: decimal.NewFromInt(500), Orders: 40},
		{InfluencerID: "IK_02", Basis: model.BasisPost, Rate: decimal.NewFromInt(2000), Orders: 2},
		{InfluencerID: "IK_03", Basis: model.BasisOrder, Rate: decimal.NewFromInt(400), Orders: 15},
		{InfluencerID: "IK_04", Basis: model.BasisOrder, Rate: decimal.NewFromInt(300), Orders: 30},
		{InfluencerID: "IK_05", Basis: model.BasisPost, Rate: decimal.NewFromInt(1800), Orders: 2},
	}

	t := &model.Tables{
		Influencers: influencers,
		Posts:       posts,
		Campaigns:   campaigns,
		Payouts:     payouts,
	}
	t.Derive()
	return t
}
