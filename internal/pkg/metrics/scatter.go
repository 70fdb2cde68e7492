package metrics

// ScatterPoint ROAS 与粉丝数散点，点大小取 roas
type ScatterPoint struct {
	InfluencerID   string  `json:"influencer_id"`
	InfluencerName string  `json:"influencer_name"`
	Campaign       string  `json:"campaign"`
	Followers      int64   `json:"followers"`
	ROAS           float64 `json:"roas"`
	Size           float64 `json:"size"`
}

// ScatterSeries 同一平台的点，平台决定颜色
type ScatterSeries struct {
	Platform string         `json:"platform"`
	Points   []ScatterPoint `json:"points"`
}

// Scatter 按平台首次出现顺序分组
func Scatter(rows []JoinedRow) []ScatterSeries {
	platforms := unique(rows, func(r JoinedRow) string { return r.Platform })
	idx := make(map[string]int, len(platforms))
	out := make([]ScatterSeries, len(platforms))
	for i, p := range platforms {
		idx[p] = i
		out[i] = ScatterSeries{Platform: p}
	}
	for _, r := range rows {
		s := &out[idx[r.Platform]]
		s.Points = append(s.Points, ScatterPoint{
			InfluencerID:   r.InfluencerID,
			InfluencerName: r.InfluencerName,
			Campaign:       r.Campaign,
			Followers:      r.Followers,
			ROAS:           r.ROAS,
			Size:           r.ROAS,
		})
	}
	return out
}
