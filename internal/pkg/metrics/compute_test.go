package metrics

import (
	"testing"

	"Pulseboard/internal/pkg/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tables := dataset.Sample()

	t.Run("defaults select every observed value", func(t *testing.T) {
		v := Compute(tables, Filter{})
		assert.Equal(t, []string{"Instagram", "YouTube"}, v.Options.Platforms)
		assert.Equal(t, []string{"Nutrition", "Fitness", "Lifestyle"}, v.Options.Niches)
		assert.Equal(t, []string{"MuscleBlaze", "Gritzo", "HK Vitals"}, v.Options.Brands)
		assert.Equal(t, []string{"Whey", "Shake", "Zinc", "Gainer"}, v.Options.Products)
		assert.Equal(t, v.Options, v.Selected)
		assert.Len(t, v.Leaderboard, 5)
		assert.Len(t, v.Payouts, 5)
		assert.Empty(t, v.Notices)
		assert.Len(t, v.Narrative, 4)
	})

	t.Run("brand options come from the platform filtered join", func(t *testing.T) {
		v := Compute(tables, Filter{Platforms: Only("YouTube")})
		assert.Equal(t, []string{"Gritzo", "MuscleBlaze"}, v.Options.Brands)
		assert.Equal(t, int64(41), v.KPIs.TotalOrders)
	})

	t.Run("payouts ignore filters", func(t *testing.T) {
		v := Compute(tables, Filter{Platforms: Only("YouTube"), Brands: Only("Gritzo")})
		assert.Len(t, v.Payouts, 5)
		assert.Len(t, v.Leaderboard, 1)
	})

	t.Run("empty selection raises notices", func(t *testing.T) {
		v := Compute(tables, Filter{Niches: Only()})
		assert.True(t, v.HasNotice(SectionInfluencers))
		assert.True(t, v.HasNotice(SectionCampaigns))
		assert.True(t, v.HasNotice(SectionPosts))
		assert.False(t, v.HasNotice(SectionPayouts))
		assert.True(t, v.PostPerformance.NoMatch)
		assert.False(t, v.KPIs.AvgROI.Valid)
		assert.Empty(t, v.Leaderboard)
		assert.Empty(t, v.Selected.Niches)
		assert.NotNil(t, v.Selected.Niches)
	})

	t.Run("insights", func(t *testing.T) {
		v := Compute(tables, Filter{})
		require.Len(t, v.Insights, 4)
		assert.Contains(t, v.Insights[0].Text, "Kunal")
		assert.Contains(t, v.Insights[1].Text, "HK Vitals")
		assert.Contains(t, v.Insights[2].Text, "Instagram")
		assert.Contains(t, v.Insights[3].Text, "Nutrition")
	})
}

func TestSelection(t *testing.T) {
	s := Only("a", "b", "a")
	assert.Equal(t, []string{"a", "b"}, s.Values())
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("c"))
	assert.False(t, s.IsAll())

	all := All()
	assert.True(t, all.IsAll())
	assert.True(t, all.Contains("anything"))
	assert.Equal(t, []string{"x", "y"}, all.Resolve([]string{"x", "y"}).Values())
	assert.Equal(t, []string{"a", "b"}, s.Resolve([]string{"x"}).Values())
}
