package export

import (
	"fmt"
	"strconv"

	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/metrics"

	"github.com/shopspring/decimal"
)

// Table 导出用的二维表，单元格保留原始类型，由各格式自行序列化
type Table struct {
	Name   string
	Header []string
	Rows   [][]any
}

var (
	LeaderboardColumns = []string{"influencer_id", "influencer_name", "platform", "total_orders", "total_revenue", "total_cost", "avg_roi"}
	PayoutColumns      = []string{"influencer_name", "platform", "basis", "rate", "orders", "total_payout"}
)

func LeaderboardTable(rows []metrics.LeaderboardRow) *Table {
	t := &Table{Name: "leaderboard", Header: LeaderboardColumns, Rows: make([][]any, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.InfluencerID,
			r.InfluencerName,
			r.Platform,
			r.TotalOrders,
			r.TotalRevenue,
			r.TotalCost,
			r.AvgROI,
		})
	}
	return t
}

func PayoutTable(rows []metrics.PayoutRow) *Table {
	t := &Table{Name: "payouts", Header: PayoutColumns, Rows: make([][]any, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.InfluencerName,
			r.Platform,
			r.Basis,
			r.Rate,
			r.Orders,
			r.TotalPayout,
		})
	}
	return t
}

// formatText 单元格的文本形式
func formatText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case decimal.Decimal:
		return x.String()
	case model.Ratio:
		return x.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
