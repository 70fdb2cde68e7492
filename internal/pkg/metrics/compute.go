package metrics

import "Pulseboard/internal/model"

const (
	SectionInfluencers = "influencers"
	SectionCampaigns   = "campaigns"
	SectionPosts       = "posts"
	SectionPayouts     = "payouts"
)

// Notice 某一阶段没有数据时给展示层的提示
type Notice struct {
	Section string `json:"section"`
	Message string `json:"message"`
}

// Options 各过滤器的可选值
// 平台与垂类取自全量达人，品牌与商品取自未按品牌/商品过滤的连接结果
type Options struct {
	Platforms []string `json:"platforms"`
	Niches    []string `json:"niches"`
	Brands    []string `json:"brands"`
	Products  []string `json:"products"`
}

// View 一次完整重算的结果
type View struct {
	Options         Options          `json:"options"`
	Selected        Options          `json:"selected"`
	KPIs            KPIs             `json:"kpis"`
	Leaderboard     []LeaderboardRow `json:"leaderboard"`
	Brands          []BrandRow       `json:"brands"`
	PostPerformance PostPerformance  `json:"post_performance"`
	Scatter         []ScatterSeries  `json:"scatter"`
	Payouts         []PayoutRow      `json:"payouts"`
	Insights        []Insight        `json:"insights"`
	Narrative       []Insight        `json:"narrative"`
	Notices         []Notice         `json:"notices"`
}

// HasNotice 判断某一阶段是否为空
func (v *View) HasNotice(section string) bool {
	for _, n := range v.Notices {
		if n.Section == section {
			return true
		}
	}
	return false
}

// Compute 看板计算流水线，每次交互都从头重算，无副作用
func Compute(tables *model.Tables, f Filter) *View {
	v := &View{Notices: make([]Notice, 0)}

	v.Options.Platforms = unique(tables.Influencers, func(i model.Influencer) string { return i.Platform })
	v.Options.Niches = unique(tables.Influencers, func(i model.Influencer) string { return i.Niche })

	platforms := f.Platforms.Resolve(v.Options.Platforms)
	niches := f.Niches.Resolve(v.Options.Niches)
	filtered := FilterInfluencers(tables.Influencers, platforms, niches)

	unfiltered := JoinCampaigns(tables.Campaigns, filtered)
	v.Options.Brands = unique(unfiltered, func(r JoinedRow) string { return r.Brand })
	v.Options.Products = unique(unfiltered, func(r JoinedRow) string { return r.Product })

	brands := f.Brands.Resolve(v.Options.Brands)
	products := f.Products.Resolve(v.Options.Products)
	joined := FilterJoined(unfiltered, brands, products)

	v.Selected = Options{
		Platforms: nonNil(platforms.Values()),
		Niches:    nonNil(niches.Values()),
		Brands:    nonNil(brands.Values()),
		Products:  nonNil(products.Values()),
	}

	v.KPIs = ComputeKPIs(joined)
	v.Leaderboard = Leaderboard(joined)
	v.Brands = BrandSummary(joined)
	v.PostPerformance = PostPerformanceOf(tables.Posts, filtered)
	v.Scatter = Scatter(joined)
	v.Payouts = PayoutJoin(tables.Payouts, tables.Influencers)
	v.Insights = Insights(joined, v.Leaderboard, v.Brands)
	v.Narrative = StaticInsights()

	if len(filtered) == 0 {
		v.Notices = append(v.Notices, Notice{Section: SectionInfluencers, Message: "No influencers match the selected filters."})
	}
	if len(joined) == 0 {
		v.Notices = append(v.Notices, Notice{Section: SectionCampaigns, Message: "No campaign records match the selected filters."})
	}
	if v.PostPerformance.NoMatch || len(v.PostPerformance.Rows) == 0 {
		v.Notices = append(v.Notices, Notice{Section: SectionPosts, Message: "No post data for the selected influencers."})
	}
	if len(v.Payouts) == 0 {
		v.Notices = append(v.Notices, Notice{Section: SectionPayouts, Message: "No payout records match known influencers."})
	}
	return v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
