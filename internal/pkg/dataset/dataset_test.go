package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"Pulseboard/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	influencersCSV = `id,influencer_name,platform,niche,followers,gender
IK_10,Asha,Instagram,Yoga,12000,F
IK_11,Dev,YouTube,Fitness,80000,M
`
	postsCSV = `influencer_id,platform,date,url,caption,reach,likes,comments
IK_10,Instagram,2024-02-01,https://post/a,Hello,1000,100,10
IK_11,YouTube,2024-02-02 10:30:00,https://post/b,"Hi, there",3000,300,30
`
	campaignsCSV = `source,campaign,influencer_id,user_id,product,date,orders,revenue,brand,cost
Instagram,C1,IK_10,201,Whey,2024-03-01,5,2500,MuscleBlaze,500
YouTube,C2,IK_11,202,Shake,03/02/2024,7,7000.50,Gritzo,0
`
	payoutsCSV = `influencer_id,basis,rate,orders
IK_10,order,100,5
IK_11,post,2000,2
`
)

func fullUpload() map[Kind][]byte {
	return map[Kind][]byte{
		KindInfluencers: []byte(influencersCSV),
		KindPosts:       []byte(postsCSV),
		KindCampaigns:   []byte(campaignsCSV),
		KindPayouts:     []byte(payoutsCSV),
	}
}

func TestSample(t *testing.T) {
	tables := Sample()
	require.Len(t, tables.Influencers, 5)
	require.Len(t, tables.Posts, 10)
	require.Len(t, tables.Campaigns, 5)
	require.Len(t, tables.Payouts, 5)

	p := tables.Payouts[0]
	assert.Equal(t, "IK_01", p.InfluencerID)
	assert.Equal(t, model.BasisOrder, p.Basis)
	assert.True(t, p.TotalPayout.Equal(decimal.NewFromInt(20000)))

	flat := tables.Payouts[1]
	assert.Equal(t, model.BasisPost, flat.Basis)
	assert.True(t, flat.TotalPayout.Equal(decimal.NewFromInt(2000)))

	c := tables.Campaigns[0]
	assert.InDelta(t, 3.8462, c.ROI.Value, 1e-4)
	assert.InDelta(t, 25000.0/6501.0, c.ROAS, 1e-12)

	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), tables.Posts[9].Date)
	assert.Equal(t, "IK_05", tables.Posts[9].InfluencerID)
	assert.Equal(t, "https://post/9", tables.Posts[9].URL)

	// 每次返回独立副本
	tables.Influencers[0].Name = "changed"
	assert.Equal(t, "Riya", Sample().Influencers[0].Name)
	assert.Equal(t, Sample(), Sample())
}

func TestParse(t *testing.T) {
	t.Run("campaigns with derived columns", func(t *testing.T) {
		rows, err := ParseCampaigns(strings.NewReader(campaignsCSV))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "201", rows[0].UserID)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), rows[0].Date)
		assert.Equal(t, 5.0, rows[0].ROI.Value)
		assert.Equal(t, 2500.0/501.0, rows[0].ROAS)
		assert.True(t, rows[1].Revenue.Equal(decimal.RequireFromString("7000.50")))
		assert.False(t, rows[1].ROI.Valid)
		assert.Equal(t, 7000.5, rows[1].ROAS)
	})

	t.Run("posts accept timestamps and quoted fields", func(t *testing.T) {
		rows, err := ParsePosts(strings.NewReader(postsCSV))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), rows[1].Date)
		assert.Equal(t, "Hi, there", rows[1].Caption)
	})

	t.Run("column order and extra columns do not matter", func(t *testing.T) {
		in := "gender,followers,extra,niche,platform,influencer_name,id\nF,100,x,Yoga,Instagram,Asha,IK_10\n"
		rows, err := ParseInfluencers(strings.NewReader(in))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, model.Influencer{ID: "IK_10", Name: "Asha", Platform: "Instagram", Niche: "Yoga", Followers: 100, Gender: "F"}, rows[0])
	})

	t.Run("payout basis post ignores orders", func(t *testing.T) {
		rows, err := ParsePayouts(strings.NewReader("influencer_id,basis,rate,orders\nIK_02,post,2000,2\nIK_01,Order,500,40.0\n"))
		require.NoError(t, err)
		assert.True(t, rows[0].TotalPayout.Equal(decimal.NewFromInt(2000)))
		assert.True(t, rows[1].TotalPayout.Equal(decimal.NewFromInt(20000)))
	})

	t.Run("errors name the table line and column", func(t *testing.T) {
		cases := []struct {
			name string
			fn   func() error
			msg  string
		}{
			{"missing column", func() error {
				_, err := ParsePayouts(strings.NewReader("influencer_id,basis,rate\nIK_01,order,1\n"))
				return err
			}, "payouts: missing required columns orders"},
			{"bad integer", func() error {
				_, err := ParseInfluencers(strings.NewReader("id,influencer_name,platform,niche,followers,gender\nIK_01,A,B,C,lots,F\n"))
				return err
			}, "influencers line 2: column followers"},
			{"bad date", func() error {
				_, err := ParsePosts(strings.NewReader("influencer_id,platform,date,url,caption,reach,likes,comments\nIK_01,I,yesterday,u,c,1,1,1\n"))
				return err
			}, "posts line 2: column date"},
			{"negative cost", func() error {
				_, err := ParseCampaigns(strings.NewReader("source,campaign,influencer_id,user_id,product,date,orders,revenue,brand,cost\nI,C,IK_01,1,P,2024-01-01,1,10,B,-5\n"))
				return err
			}, "negative amount"},
			{"unknown basis", func() error {
				_, err := ParsePayouts(strings.NewReader("influencer_id,basis,rate,orders\nIK_01,month,1,1\n"))
				return err
			}, "payouts line 2"},
			{"empty file", func() error {
				_, err := ParsePayouts(strings.NewReader(""))
				return err
			}, "payouts: empty file"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := tc.fn()
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.msg)
			})
		}
	})

	t.Run("empty descriptive cells are kept", func(t *testing.T) {
		infs, err := ParseInfluencers(strings.NewReader("id,influencer_name,platform,niche,followers,gender\nIK_10,,Instagram,,100,\n"))
		require.NoError(t, err)
		require.Len(t, infs, 1)
		assert.Empty(t, infs[0].Niche)
		assert.Empty(t, infs[0].Name)

		recs, err := ParseCampaigns(strings.NewReader("source,campaign,influencer_id,user_id,product,date,orders,revenue,brand,cost\nI,,IK_10,1,P,2024-01-01,1,10,B,5\n"))
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Empty(t, recs[0].Campaign)

		_, err = ParseInfluencers(strings.NewReader("id,influencer_name,platform,niche,followers,gender\n,Asha,Instagram,Yoga,100,F\n"))
		assert.Error(t, err)
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		rows, err := ParsePayouts(strings.NewReader("influencer_id,basis,rate,orders\n\nIK_01,order,1,1\n,,,\n"))
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("all four inputs", func(t *testing.T) {
		res := Resolve(ctx, NewReaderSource("upload", fullUpload()))
		assert.False(t, res.Fallback)
		assert.Empty(t, res.Warning)
		assert.Equal(t, "upload", res.Origin)
		require.Len(t, res.Tables.Influencers, 2)
		assert.True(t, res.Tables.Payouts[0].TotalPayout.Equal(decimal.NewFromInt(500)))
	})

	t.Run("no source", func(t *testing.T) {
		res := Resolve(ctx, nil)
		assert.True(t, res.Fallback)
		assert.Empty(t, res.Warning)
		assert.Equal(t, OriginSample, res.Origin)
		assert.Equal(t, Sample(), res.Tables)
	})

	t.Run("partial input falls back without merging", func(t *testing.T) {
		files := fullUpload()
		delete(files, KindPayouts)
		res := Resolve(ctx, NewReaderSource("upload", files))
		assert.True(t, res.Fallback)
		assert.Empty(t, res.Warning)
		assert.Equal(t, Sample(), res.Tables)
	})

	t.Run("malformed input falls back with a warning", func(t *testing.T) {
		files := fullUpload()
		files[KindCampaigns] = []byte("source,campaign\nI,C\n")
		res := Resolve(ctx, NewReaderSource("upload", files))
		assert.True(t, res.Fallback)
		assert.Contains(t, res.Warning, "campaigns: missing required columns")
		assert.Equal(t, Sample(), res.Tables)
	})
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	for kind, b := range fullUpload() {
		require.NoError(t, os.WriteFile(filepath.Join(dir, kind.FileName()), b, 0o600))
	}

	res := Resolve(context.Background(), NewDirSource(dir))
	require.False(t, res.Fallback)
	assert.Equal(t, "dir", res.Origin)
	assert.Len(t, res.Tables.Campaigns, 2)

	require.NoError(t, os.Remove(filepath.Join(dir, KindPosts.FileName())))
	res = Resolve(context.Background(), NewDirSource(dir))
	assert.True(t, res.Fallback)
	assert.Empty(t, res.Warning)
}

func TestHTTPSource(t *testing.T) {
	files := fullUpload()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, ok := files[Kind(strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), ".csv"))]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write(b)
	}))
	defer srv.Close()

	urls := map[Kind]string{}
	for _, k := range Kinds {
		urls[k] = srv.URL + "/" + k.FileName()
	}
	res := Resolve(context.Background(), NewHTTPSource(urls, 5*time.Second))
	require.False(t, res.Fallback, res.Warning)
	assert.Equal(t, "http", res.Origin)
	assert.Len(t, res.Tables.Posts, 2)

	delete(files, KindPayouts)
	res = Resolve(context.Background(), NewHTTPSource(urls, 5*time.Second))
	assert.True(t, res.Fallback)
	assert.Empty(t, res.Warning)

	urls[KindPayouts] = ""
	res = Resolve(context.Background(), NewHTTPSource(urls, 5*time.Second))
	assert.True(t, res.Fallback)
}
