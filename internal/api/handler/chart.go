package handler

import (
	"math"
	"strconv"

	"Pulseboard/internal/pkg/metrics"
)

const (
	chartWidth  = 720.0
	chartHeight = 380.0
	chartLeft   = 70.0
	chartRight  = 20.0
	chartTop    = 20.0
	chartBottom = 50.0
	chartTicks  = 5
)

var platformColors = []string{"#6366f1", "#f97316", "#10b981", "#ef4444", "#0ea5e9", "#a855f7"}

type chartPoint struct {
	X, Y, R float64
	Color   string
	Title   string
}

type chartTick struct {
	Pos   float64
	Label string
}

type chartLegend struct {
	Platform string
	Color    string
}

// scatterChart 预先算好坐标的 SVG 散点图，x 轴粉丝数，y 轴 ROAS
type scatterChart struct {
	Width, Height            float64
	Left, Right, Top, Bottom float64
	Points                   []chartPoint
	XTicks, YTicks           []chartTick
	Legend                   []chartLegend
	Empty                    bool
}

func buildScatterChart(series []metrics.ScatterSeries) *scatterChart {
	ch := &scatterChart{
		Width:  chartWidth,
		Height: chartHeight,
		Left:   chartLeft,
		Right:  chartWidth - chartRight,
		Top:    chartTop,
		Bottom: chartHeight - chartBottom,
	}

	var maxX, maxY, maxSize float64
	for _, s := range series {
		for _, p := range s.Points {
			maxX = math.Max(maxX, float64(p.Followers))
			maxY = math.Max(maxY, p.ROAS)
			maxSize = math.Max(maxSize, p.Size)
		}
	}
	if len(series) == 0 {
		ch.Empty = true
	}
	maxX = niceCeil(maxX * 1.1)
	maxY = niceCeil(maxY * 1.1)

	plotW := ch.Right - ch.Left
	plotH := ch.Bottom - ch.Top
	for i, s := range series {
		color := platformColors[i%len(platformColors)]
		ch.Legend = append(ch.Legend, chartLegend{Platform: s.Platform, Color: color})
		for _, p := range s.Points {
			r := 5.0
			if maxSize > 0 {
				r += 13 * p.Size / maxSize
			}
			ch.Points = append(ch.Points, chartPoint{
				X:     ch.Left + plotW*float64(p.Followers)/maxX,
				Y:     ch.Bottom - plotH*p.ROAS/maxY,
				R:     r,
				Color: color,
				Title: p.InfluencerName + " · " + p.Campaign + " · ROAS " + strconv.FormatFloat(p.ROAS, 'f', 2, 64),
			})
		}
	}

	for i := 0; i <= chartTicks; i++ {
		frac := float64(i) / chartTicks
		ch.XTicks = append(ch.XTicks, chartTick{
			Pos:   ch.Left + plotW*frac,
			Label: compactNumber(maxX * frac),
		})
		ch.YTicks = append(ch.YTicks, chartTick{
			Pos:   ch.Bottom - plotH*frac,
			Label: strconv.FormatFloat(maxY*frac, 'f', 1, 64),
		})
	}
	return ch
}

// niceCeil 向上取整到 1/2/5 × 10^n，空数据时返回 1
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 5, 10} {
		if m*exp >= v {
			return m * exp
		}
	}
	return 10 * exp
}

func compactNumber(v float64) string {
	switch {
	case v >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', 1, 64) + "M"
	case v >= 1e3:
		return strconv.FormatFloat(v/1e3, 'f', 0, 64) + "k"
	default:
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
}
