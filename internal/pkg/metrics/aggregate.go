package metrics

import (
	"cmp"
	"slices"
	"sort"

	"Pulseboard/internal/model"

	"github.com/shopspring/decimal"
)

// LeaderboardRow 达人排行榜
type LeaderboardRow struct {
	InfluencerID   string          `json:"influencer_id"`
	InfluencerName string          `json:"influencer_name"`
	Platform       string          `json:"platform"`
	TotalOrders    int64           `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	AvgROI         model.Ratio     `json:"avg_roi"`
	UndefinedROI   int             `json:"undefined_roi"`
	Campaigns      int             `json:"campaigns"`
}

type leaderboardKey struct {
	id, name, platform string
}

func compareLeaderboardKey(a, b leaderboardKey) int {
	if c := cmp.Compare(a.id, b.id); c != 0 {
		return c
	}
	if c := cmp.Compare(a.name, b.name); c != 0 {
		return c
	}
	return cmp.Compare(a.platform, b.platform)
}

// Leaderboard 按 (id, name, platform) 分组汇总，按 avg_roi 降序
// 分组按键升序遍历，排序稳定，avg_roi 无定义的分组排在最后
func Leaderboard(rows []JoinedRow) []LeaderboardRow {
	groups := make(map[leaderboardKey]*LeaderboardRow)
	rois := make(map[leaderboardKey][]model.Ratio)
	for _, r := range rows {
		k := leaderboardKey{r.InfluencerID, r.InfluencerName, r.Platform}
		g, ok := groups[k]
		if !ok {
			g = &LeaderboardRow{
				InfluencerID:   r.InfluencerID,
				InfluencerName: r.InfluencerName,
				Platform:       r.Platform,
				TotalRevenue:   decimal.Zero,
				TotalCost:      decimal.Zero,
			}
			groups[k] = g
		}
		g.TotalOrders += r.Orders
		g.TotalRevenue = g.TotalRevenue.Add(r.Revenue)
		g.TotalCost = g.TotalCost.Add(r.Cost)
		g.Campaigns++
		rois[k] = append(rois[k], r.ROI)
	}

	keys := make([]leaderboardKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareLeaderboardKey)

	out := make([]LeaderboardRow, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		g.AvgROI, g.UndefinedROI = model.Mean(rois[k])
		out = append(out, *g)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].AvgROI, out[j].AvgROI
		if a.Valid != b.Valid {
			return a.Valid
		}
		return a.Valid && a.Value > b.Value
	})
	return out
}

// BrandRow 品牌汇总
type BrandRow struct {
	Brand              string          `json:"brand"`
	TotalOrders        int64           `json:"total_orders"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	AvgRevenuePerOrder float64         `json:"avg_revenue_per_order"`
	Rows               int             `json:"rows"`
}

// BrandSummary 按品牌分组，品牌名升序
// avg_revenue_per_order 的分母是记录行数，不是订单数
func BrandSummary(rows []JoinedRow) []BrandRow {
	groups := make(map[string]*BrandRow)
	for _, r := range rows {
		g, ok := groups[r.Brand]
		if !ok {
			g = &BrandRow{Brand: r.Brand, TotalRevenue: decimal.Zero}
			groups[r.Brand] = g
		}
		g.TotalOrders += r.Orders
		g.TotalRevenue = g.TotalRevenue.Add(r.Revenue)
		g.Rows++
	}

	brands := make([]string, 0, len(groups))
	for b := range groups {
		brands = append(brands, b)
	}
	slices.Sort(brands)

	out := make([]BrandRow, 0, len(brands))
	for _, b := range brands {
		g := groups[b]
		g.AvgRevenuePerOrder = g.TotalRevenue.InexactFloat64() / float64(g.Rows)
		out = append(out, *g)
	}
	return out
}

// PostPerformanceRow 达人内容表现均值
type PostPerformanceRow struct {
	InfluencerID   string  `json:"influencer_id"`
	InfluencerName string  `json:"influencer_name"`
	Platform       string  `json:"platform"`
	AvgReach       float64 `json:"avg_reach"`
	AvgLikes       float64 `json:"avg_likes"`
	AvgComments    float64 `json:"avg_comments"`
	Posts          int     `json:"posts"`
}

// PostPerformance 内容表现结果
// NoMatch 为 true 表示过滤后没有任何达人，展示层应提示而不是渲染空表
type PostPerformance struct {
	NoMatch bool                 `json:"no_match"`
	Rows    []PostPerformanceRow `json:"rows"`
}

// PostPerformanceOf 帖子与过滤后的达人内连接，按达人 ID 升序汇总
func PostPerformanceOf(posts []model.Post, influencers []model.Influencer) PostPerformance {
	if len(influencers) == 0 {
		return PostPerformance{NoMatch: true, Rows: []PostPerformanceRow{}}
	}

	type sums struct {
		reach, likes, comments int64
		n                      int
	}
	allowed := groupInfluencers(influencers)
	agg := make(map[string]*sums)
	for _, p := range posts {
		if _, ok := allowed[p.InfluencerID]; !ok {
			continue
		}
		s, ok := agg[p.InfluencerID]
		if !ok {
			s = &sums{}
			agg[p.InfluencerID] = s
		}
		s.reach += p.Reach
		s.likes += p.Likes
		s.comments += p.Comments
		s.n++
	}

	ids := make([]string, 0, len(agg))
	for id := range agg {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	rows := make([]PostPerformanceRow, 0, len(ids))
	for _, id := range ids {
		s := agg[id]
		n := float64(s.n)
		for _, inf := range allowed[id] {
			rows = append(rows, PostPerformanceRow{
				InfluencerID:   id,
				InfluencerName: inf.Name,
				Platform:       inf.Platform,
				AvgReach:       float64(s.reach) / n,
				AvgLikes:       float64(s.likes) / n,
				AvgComments:    float64(s.comments) / n,
				Posts:          s.n,
			})
		}
	}
	return PostPerformance{Rows: rows}
}
