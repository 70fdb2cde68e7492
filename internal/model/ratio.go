package model

import (
	"strconv"

	"github.com/goccy/go-json"
)

// Ratio 可能无定义的比值（例如成本为 0 时的 ROI）
type Ratio struct {
	Value float64
	Valid bool
}

func DefinedRatio(v float64) Ratio {
	return Ratio{Value: v, Valid: true}
}

func UndefinedRatio() Ratio {
	return Ratio{}
}

// String 无定义时返回空串，用于 CSV 导出
func (r Ratio) String() string {
	if !r.Valid {
		return ""
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

func (r *Ratio) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = UndefinedRatio()
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = DefinedRatio(v)
	return nil
}

// Mean 只对有定义的值求平均，返回均值与无定义的个数
func Mean(values []Ratio) (Ratio, int) {
	var sum float64
	var n, undefined int
	for _, v := range values {
		if !v.Valid {
			undefined++
			continue
		}
		sum += v.Value
		n++
	}
	if n == 0 {
		return UndefinedRatio(), undefined
	}
	return DefinedRatio(sum / float64(n)), undefined
}
