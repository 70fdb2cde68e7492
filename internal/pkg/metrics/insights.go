package metrics

import (
	"fmt"

	"Pulseboard/internal/model"
)

// Insight 叙述性结论
type Insight struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// staticInsights 固定的运营解读
var staticInsights = []Insight{
	{Label: "Top ROI Influencer", Text: "Based on the leaderboard"},
	{Label: "Lowest Performing Brand", Text: "Check brand summary avg revenue"},
	{Label: "Instagram", Text: "shows stronger ROAS trend"},
	{Label: "Nutrition influencers", Text: "show better average results"},
}

// StaticInsights 返回固定解读的副本
func StaticInsights() []Insight {
	return append([]Insight(nil), staticInsights...)
}

// Insights 根据当前过滤结果生成数据驱动的结论
func Insights(rows []JoinedRow, board []LeaderboardRow, brands []BrandRow) []Insight {
	out := make([]Insight, 0, 4)

	for _, r := range board {
		if r.AvgROI.Valid {
			out = append(out, Insight{
				Label: "Top ROI Influencer",
				Text:  fmt.Sprintf("%s (%s) at %.2fx", r.InfluencerName, r.Platform, r.AvgROI.Value),
			})
			break
		}
	}

	if len(brands) > 0 {
		lowest := brands[0]
		for _, b := range brands[1:] {
			if b.AvgRevenuePerOrder < lowest.AvgRevenuePerOrder {
				lowest = b
			}
		}
		out = append(out, Insight{
			Label: "Lowest Performing Brand",
			Text:  fmt.Sprintf("%s with %.2f avg revenue per order", lowest.Brand, lowest.AvgRevenuePerOrder),
		})
	}

	if p, v, ok := bestGroupMean(rows,
		func(r JoinedRow) string { return r.Platform },
		func(r JoinedRow) model.Ratio { return model.DefinedRatio(r.ROAS) },
	); ok {
		out = append(out, Insight{
			Label: "Best ROAS Platform",
			Text:  fmt.Sprintf("%s averages %.2f ROAS", p, v),
		})
	}

	if n, v, ok := bestGroupMean(rows,
		func(r JoinedRow) string { return r.Niche },
		func(r JoinedRow) model.Ratio { return r.ROI },
	); ok {
		out = append(out, Insight{
			Label: "Best Niche",
			Text:  fmt.Sprintf("%s influencers average %.2fx ROI", n, v),
		})
	}

	return out
}

// bestGroupMean 分组求均值并返回最大的一组，平手取首次出现者
func bestGroupMean(rows []JoinedRow, key func(JoinedRow) string, value func(JoinedRow) model.Ratio) (string, float64, bool) {
	order := unique(rows, key)
	values := make(map[string][]model.Ratio, len(order))
	for _, r := range rows {
		k := key(r)
		values[k] = append(values[k], value(r))
	}

	var best string
	var bestVal float64
	found := false
	for _, k := range order {
		m, _ := model.Mean(values[k])
		if !m.Valid {
			continue
		}
		if !found || m.Value > bestVal {
			best, bestVal, found = k, m.Value, true
		}
	}
	return best, bestVal, found
}
