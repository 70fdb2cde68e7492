package handler

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/service"
	"embed"
	"html/template"
	log "log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

const dashboardTemplate = "dashboard.html"

// PageTemplate 看板页面模板，由路由注册到 gin
func PageTemplate(currency string) *template.Template {
	funcs := template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return currency + d.StringFixed(2)
		},
		"ratio": func(r model.Ratio) string {
			if !r.Valid {
				return "n/a"
			}
			return strconv.FormatFloat(r.Value, 'f', 2, 64)
		},
		"float": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 2, 64)
		},
		"contains": func(values []string, v string) bool {
			return slices.Contains(values, v)
		},
		"add": func(delta, v float64) float64 {
			return v + delta
		},
	}
	return template.Must(template.New(dashboardTemplate).Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

type exportLinks struct {
	LeaderboardCSV  string
	LeaderboardXLSX string
	PayoutsCSV      string
	PayoutsXLSX     string
}

type pageData struct {
	*dto.DashboardDTO
	Chart   *scatterChart
	Exports exportLinks
}

type PageHandler struct {
	dashboardSvc service.DashboardService
}

func NewPageHandler(dashboardSvc service.DashboardService) *PageHandler {
	return &PageHandler{
		dashboardSvc: dashboardSvc,
	}
}

// Index 渲染看板页面
func (h *PageHandler) Index(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.dashboardSvc.Dashboard(c.Request.Context(), sessionID(c), filter)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "failed to build dashboard page", "err", err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.HTML(http.StatusOK, dashboardTemplate, pageData{
		DashboardDTO: data,
		Chart:        buildScatterChart(data.Scatter),
		Exports:      buildExportLinks(c.Request.URL.Query()),
	})
}

// buildExportLinks 排行榜导出沿用当前过滤条件
func buildExportLinks(query url.Values) exportLinks {
	link := func(file string, withFilter bool) string {
		u := url.URL{Path: "/api/export/" + file}
		if withFilter {
			u.RawQuery = query.Encode()
		}
		return u.String()
	}
	return exportLinks{
		LeaderboardCSV:  link("leaderboard."+consts.ExportFormatCSV, true),
		LeaderboardXLSX: link("leaderboard."+consts.ExportFormatXLSX, true),
		PayoutsCSV:      link("payouts."+consts.ExportFormatCSV, false),
		PayoutsXLSX:     link("payouts."+consts.ExportFormatXLSX, false),
	}
}
