package dataset

// Kind 数据表类型
type Kind string

const (
	KindInfluencers Kind = "influencers"
	KindPosts       Kind = "posts"
	KindCampaigns   Kind = "campaigns"
	KindPayouts     Kind = "payouts"
)

// Kinds 四张表，顺序即解析顺序
var Kinds = []Kind{KindInfluencers, KindPosts, KindCampaigns, KindPayouts}

// FileName 约定的文件名
func (k Kind) FileName() string {
	return string(k) + ".csv"
}

// Columns 每张表必须包含的列
func (k Kind) Columns() []string {
	switch k {
	case KindInfluencers:
		return []string{"id", "influencer_name", "platform", "niche", "followers", "gender"}
	case KindPosts:
		return []string{"influencer_id", "platform", "date", "url", "caption", "reach", "likes", "comments"}
	case KindCampaigns:
		return []string{"source", "campaign", "influencer_id", "user_id", "product", "date", "orders", "revenue", "brand", "cost"}
	case KindPayouts:
		return []string{"influencer_id", "basis", "rate", "orders"}
	}
	return nil
}
