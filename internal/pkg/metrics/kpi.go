package metrics

import (
	"Pulseboard/internal/model"

	"github.com/shopspring/decimal"
)

// KPIs 看板顶部指标
// 空连接结果下订单与收入为 0，AvgROI 无定义
type KPIs struct {
	TotalOrders  int64           `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	AvgROI       model.Ratio     `json:"avg_roi"`
	UndefinedROI int             `json:"undefined_roi"`
	Rows         int             `json:"rows"`
}

func ComputeKPIs(rows []JoinedRow) KPIs {
	k := KPIs{TotalRevenue: decimal.Zero, Rows: len(rows)}
	rois := make([]model.Ratio, 0, len(rows))
	for _, r := range rows {
		k.TotalOrders += r.Orders
		k.TotalRevenue = k.TotalRevenue.Add(r.Revenue)
		rois = append(rois, r.ROI)
	}
	k.AvgROI, k.UndefinedROI = model.Mean(rois)
	return k
}
