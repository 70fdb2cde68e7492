package dto

import (
	"net/url"

	"Pulseboard/internal/pkg/metrics"
)

// DashboardQueryDTO 看板过滤参数，均为可重复的查询参数
// BrandShown / ProductShown 由页面表单携带，记录提交时页面上可选的品牌与商品
type DashboardQueryDTO struct {
	Platform     []string `form:"platform"`
	Niche        []string `form:"niche"`
	Brand        []string `form:"brand"`
	Product      []string `form:"product"`
	BrandShown   []string `form:"brand_shown"`
	ProductShown []string `form:"product_shown"`
}

// Filter 转为过滤状态
// 未出现的参数表示未指定；出现但只有空值表示显式选择了空集合
// 页面提交的品牌/商品若覆盖了当时展示的全部选项，视为未指定，平台或垂类变化后重新取全部观测值
func (q *DashboardQueryDTO) Filter(query url.Values) metrics.Filter {
	return metrics.Filter{
		Platforms: selection(query, "platform", q.Platform),
		Niches:    selection(query, "niche", q.Niche),
		Brands:    shownSelection(query, "brand", q.Brand, q.BrandShown),
		Products:  shownSelection(query, "product", q.Product, q.ProductShown),
	}
}

func selection(query url.Values, key string, values []string) metrics.Selection {
	if _, ok := query[key]; !ok {
		return metrics.All()
	}
	return metrics.Only(nonEmpty(values)...)
}

func shownSelection(query url.Values, key string, values, shown []string) metrics.Selection {
	if _, ok := query[key+"_shown"]; ok {
		picked := metrics.Only(nonEmpty(values)...)
		covered := true
		for _, v := range nonEmpty(shown) {
			if !picked.Contains(v) {
				covered = false
				break
			}
		}
		if covered {
			return metrics.All()
		}
	}
	return selection(query, key, values)
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// DashboardDTO 看板 JSON 返回
type DashboardDTO struct {
	Dataset  *DatasetStatusDTO `json:"dataset"`
	Currency string            `json:"currency"`
	*metrics.View
}
