package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"Pulseboard/internal/api/config"
	"Pulseboard/internal/api/handler"
	"Pulseboard/internal/repository"
	"Pulseboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int             `json:"Code"`
	Message string          `json:"Message"`
	Data    json.RawMessage `json:"Data"`
}

type client struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func newClient(t *testing.T) *client {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Upload.MaxFileSize = 1024
	config.Cfg = cfg

	repo := repository.NewMemorySessionRepo(time.Hour)
	datasetSvc := service.NewDatasetService(repo, nil)
	dashboardSvc := service.NewDashboardService(datasetSvc, cfg.Server.Currency)
	router := SetupRouter(&HandlersGroup{
		PageHandler:      handler.NewPageHandler(dashboardSvc),
		DashboardHandler: handler.NewDashboardHandler(dashboardSvc),
		DatasetHandler:   handler.NewDatasetHandler(datasetSvc, cfg.Upload.MaxFileSize),
	}, cfg)
	return &client{t: t, router: router}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "pulseboard_sid" {
			c.cookie = ck
		}
	}
	return w
}

func (c *client) get(target string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (c *client) getJSON(target string, data any) envelope {
	w := c.get(target)
	require.Equal(c.t, http.StatusOK, w.Code)
	var env envelope
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil && env.Code == 200 {
		require.NoError(c.t, json.Unmarshal(env.Data, data))
	}
	return env
}

func (c *client) upload(target string, files map[string]string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for field, content := range files {
		fw, err := mw.CreateFormFile(field, field+".csv")
		require.NoError(c.t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(c.t, err)
	}
	require.NoError(c.t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req)
}

func uploadFiles() map[string]string {
	return map[string]string{
		"influencers": "id,influencer_name,platform,niche,followers,gender\nIK_10,Asha,Instagram,Yoga,12000,F\n",
		"posts":       "influencer_id,platform,date,url,caption,reach,likes,comments\nIK_10,Instagram,2024-02-01,https://post/a,Hello,1000,100,10\n",
		"campaigns":   "source,campaign,influencer_id,user_id,product,date,orders,revenue,brand,cost\nInstagram,C1,IK_10,201,Whey,2024-03-01,5,2500,MuscleBlaze,0\n",
		"payouts":     "influencer_id,basis,rate,orders\nIK_10,order,100,5\n",
	}
}

type dashboardBody struct {
	Dataset struct {
		Origin   string `json:"origin"`
		Fallback bool   `json:"fallback"`
	} `json:"dataset"`
	KPIs struct {
		TotalOrders  int64    `json:"total_orders"`
		TotalRevenue string   `json:"total_revenue"`
		AvgROI       *float64 `json:"avg_roi"`
	} `json:"kpis"`
	Leaderboard []struct {
		InfluencerID string   `json:"influencer_id"`
		AvgROI       *float64 `json:"avg_roi"`
	} `json:"leaderboard"`
	Notices []struct {
		Section string `json:"section"`
	} `json:"notices"`
}

func TestPing(t *testing.T) {
	c := newClient(t)
	env := c.getJSON("/api/ping", nil)
	assert.Equal(t, "pong", env.Message)
}

func TestDashboardAPI(t *testing.T) {
	t.Run("sample data", func(t *testing.T) {
		c := newClient(t)
		var body dashboardBody
		env := c.getJSON("/api/dashboard", &body)
		require.Equal(t, 200, env.Code)
		assert.Equal(t, "sample", body.Dataset.Origin)
		assert.Equal(t, int64(126), body.KPIs.TotalOrders)
		require.Len(t, body.Leaderboard, 5)
		assert.Equal(t, "IK_04", body.Leaderboard[0].InfluencerID)
		assert.Empty(t, body.Notices)
		require.NotNil(t, c.cookie)
	})

	t.Run("explicitly empty platform selection", func(t *testing.T) {
		c := newClient(t)
		var body dashboardBody
		c.getJSON("/api/dashboard?platform=", &body)
		assert.Empty(t, body.Leaderboard)
		assert.Nil(t, body.KPIs.AvgROI)
		sections := make([]string, 0)
		for _, n := range body.Notices {
			sections = append(sections, n.Section)
		}
		assert.Contains(t, sections, "influencers")
		assert.Contains(t, sections, "campaigns")
		assert.NotContains(t, sections, "payouts")
	})

	t.Run("brand filter", func(t *testing.T) {
		c := newClient(t)
		var body dashboardBody
		c.getJSON("/api/dashboard?brand=Gritzo", &body)
		require.Len(t, body.Leaderboard, 2)
		assert.Equal(t, "IK_04", body.Leaderboard[0].InfluencerID)
		assert.Equal(t, "IK_02", body.Leaderboard[1].InfluencerID)
		assert.Equal(t, int64(40), body.KPIs.TotalOrders)
	})

	t.Run("long filter values are accepted", func(t *testing.T) {
		c := newClient(t)
		var body dashboardBody
		env := c.getJSON("/api/dashboard?platform="+strings.Repeat("P", 70), &body)
		assert.Equal(t, 200, env.Code)
		assert.Empty(t, body.Leaderboard)
	})
}

func TestDatasetAPI(t *testing.T) {
	t.Run("upload then dashboard", func(t *testing.T) {
		c := newClient(t)
		w := c.upload("/api/dataset", uploadFiles())
		require.Equal(t, http.StatusOK, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Equal(t, 200, env.Code)

		var body dashboardBody
		c.getJSON("/api/dashboard", &body)
		assert.Equal(t, "upload", body.Dataset.Origin)
		require.Len(t, body.Leaderboard, 1)
		assert.Nil(t, body.Leaderboard[0].AvgROI)

		var status struct {
			Origin string         `json:"origin"`
			Counts map[string]int `json:"counts"`
		}
		c.getJSON("/api/dataset", &status)
		assert.Equal(t, "upload", status.Origin)
		assert.Equal(t, 1, status.Counts["influencers"])

		w = c.do(httptest.NewRequest(http.MethodDelete, "/api/dataset", nil))
		require.Equal(t, http.StatusOK, w.Code)
		c.getJSON("/api/dataset", &status)
		assert.Equal(t, "sample", status.Origin)
	})

	t.Run("malformed upload reports a warning", func(t *testing.T) {
		c := newClient(t)
		files := uploadFiles()
		files["posts"] = "influencer_id,platform\nIK_10,Instagram\n"
		w := c.upload("/api/dataset", files)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Equal(t, 200, env.Code)
		var status struct {
			Fallback bool   `json:"fallback"`
			Warning  string `json:"warning"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &status))
		assert.True(t, status.Fallback)
		assert.True(t, strings.HasPrefix(status.Warning, "Upload error: "))
	})

	t.Run("file too large", func(t *testing.T) {
		c := newClient(t)
		files := uploadFiles()
		files["posts"] += strings.Repeat("IK_10,Instagram,2024-02-01,https://post/a,Hello,1000,100,10\n", 40)
		w := c.upload("/api/dataset", files)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, 413, env.Code)
	})

	t.Run("page form redirects back", func(t *testing.T) {
		c := newClient(t)
		w := c.upload("/dataset/upload", uploadFiles())
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		w = c.do(httptest.NewRequest(http.MethodPost, "/dataset/reset", nil))
		assert.Equal(t, http.StatusSeeOther, w.Code)
	})
}

func TestExportAPI(t *testing.T) {
	c := newClient(t)

	w := c.get("/api/export/payouts.csv")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="payouts.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "influencer_name,platform,basis,rate,orders,total_payout\n"+
		"Riya,Instagram,order,500,40,20000\n"+
		"Aman,YouTube,post,2000,2,2000\n"+
		"Tara,Instagram,order,400,15,6000\n"+
		"Kunal,Instagram,order,300,30,9000\n"+
		"Neha,YouTube,post,1800,2,1800\n", w.Body.String())

	w = c.get("/api/export/leaderboard.xlsx?platform=YouTube")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))

	env := c.getJSON("/api/export/brands.csv", nil)
	assert.Equal(t, 404, env.Code)
	env = c.getJSON("/api/export/payouts.pdf", nil)
	assert.Equal(t, 400, env.Code)
}

func TestDashboardPageWidenFilters(t *testing.T) {
	c := newClient(t)

	// 收窄到 YouTube，页面只展示该平台的品牌与商品
	w := c.get("/?platform=&platform=YouTube")
	require.Equal(t, http.StatusOK, w.Code)
	page := w.Body.String()
	assert.Contains(t, page, `name="brand_shown" value="Gritzo"`)
	assert.Contains(t, page, `name="brand_shown" value="MuscleBlaze"`)
	assert.NotContains(t, page, `name="brand_shown" value="HK Vitals"`)

	// 重新选中全部平台与垂类，表单原样带回当时展示且全部选中的品牌与商品
	form := url.Values{
		"platform":      {"", "Instagram", "YouTube"},
		"niche":         {"", "Nutrition", "Fitness", "Lifestyle"},
		"brand":         {"", "Gritzo", "MuscleBlaze"},
		"brand_shown":   {"", "Gritzo", "MuscleBlaze"},
		"product":       {"", "Shake", "Whey"},
		"product_shown": {"", "Shake", "Whey"},
	}
	var body dashboardBody
	c.getJSON("/api/dashboard?"+form.Encode(), &body)
	assert.Equal(t, int64(126), body.KPIs.TotalOrders)
	assert.Len(t, body.Leaderboard, 5)

	w = c.get("/?" + form.Encode())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="brand_shown" value="HK Vitals"`)

	// 取消一个品牌仍是显式选择
	form["brand"] = []string{"", "Gritzo"}
	c.getJSON("/api/dashboard?"+form.Encode(), &body)
	assert.Equal(t, int64(40), body.KPIs.TotalOrders)
}

func TestDashboardPage(t *testing.T) {
	c := newClient(t)

	w := c.get("/")
	require.Equal(t, http.StatusOK, w.Code)
	page := w.Body.String()
	assert.Contains(t, page, "HealthKart Influencer Campaign Dashboard")
	assert.Contains(t, page, "<svg")
	assert.Contains(t, page, "Kunal")
	assert.Contains(t, page, `href="/api/export/payouts.csv"`)

	w = c.get("/?platform=")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No influencers match the selected filters.")
	assert.Contains(t, w.Body.String(), "No campaign data to plot.")
}
