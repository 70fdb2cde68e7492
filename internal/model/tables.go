package model

// Tables 一个会话持有的四张表
type Tables struct {
	Influencers []Influencer     `json:"influencers"`
	Posts       []Post           `json:"posts"`
	Campaigns   []CampaignRecord `json:"campaigns"`
	Payouts     []Payout         `json:"payouts"`
}

// Derive 为所有记录计算派生列
func (t *Tables) Derive() {
	for i := range t.Campaigns {
		t.Campaigns[i].Derive()
	}
	for i := range t.Payouts {
		t.Payouts[i].Derive()
	}
}

// Counts 各表行数
func (t *Tables) Counts() map[string]int {
	return map[string]int{
		"influencers": len(t.Influencers),
		"posts":       len(t.Posts),
		"campaigns":   len(t.Campaigns),
		"payouts":     len(t.Payouts),
	}
}
