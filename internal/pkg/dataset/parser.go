package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"Pulseboard/internal/model"

	"github.com/araddon/dateparse"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// table 一张已读入内存的 CSV 表，列按表头名称定位
type table struct {
	kind    Kind
	columns map[string]int
	rows    [][]string
}

func readTable(kind Kind, r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "%s: malformed csv", kind)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("%s: empty file", kind)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}
	var missing []string
	for _, col := range kind.Columns() {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Errorf("%s: missing required columns %s", kind, strings.Join(missing, ", "))
	}

	return &table{kind: kind, columns: columns, rows: records[1:]}, nil
}

// each 逐行回调，行号从 2 开始（第 1 行是表头）
func (t *table) each(fn func(line int, c *cursor) error) error {
	for i, row := range t.rows {
		if isBlank(row) {
			continue
		}
		c := &cursor{table: t, row: row}
		if err := fn(i+2, c); err != nil {
			return errors.Wrapf(err, "%s line %d", t.kind, i+2)
		}
		if c.err != nil {
			return errors.Wrapf(c.err, "%s line %d", t.kind, i+2)
		}
	}
	return nil
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// cursor 读取单行字段，记录第一个错误
type cursor struct {
	table *table
	row   []string
	err   error
}

func (c *cursor) str(col string) string {
	i := c.table.columns[col]
	if i >= len(c.row) {
		return ""
	}
	return strings.TrimSpace(c.row[i])
}

func (c *cursor) count(col string) int64 {
	v, err := parseCount(c.str(col))
	if err != nil && c.err == nil {
		c.err = errors.Wrapf(err, "column %s", col)
	}
	return v
}

func (c *cursor) money(col string) decimal.Decimal {
	raw := c.str(col)
	v, err := decimal.NewFromString(raw)
	if err != nil {
		if c.err == nil {
			c.err = errors.Errorf("column %s: invalid amount %q", col, raw)
		}
		return decimal.Zero
	}
	if v.IsNegative() && c.err == nil {
		c.err = errors.Errorf("column %s: negative amount %s", col, raw)
	}
	return v
}

func (c *cursor) date(col string) time.Time {
	v, err := parseDate(c.str(col))
	if err != nil && c.err == nil {
		c.err = errors.Wrapf(err, "column %s", col)
	}
	return v
}

// parseCount 解析非负整数，兼容 "40.0" 这类整数值浮点写法
func parseCount(raw string) (int64, error) {
	if raw == "" {
		return 0, errors.New("missing value")
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, errors.Errorf("invalid integer %q", raw)
		}
		v = int64(f)
	}
	if v < 0 {
		return 0, errors.Errorf("negative value %q", raw)
	}
	return v, nil
}

// parseDate 解析为日历日期，时分秒与时区被丢弃
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("missing date")
	}
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid date %q", raw)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ParseInfluencers(r io.Reader) ([]model.Influencer, error) {
	t, err := readTable(KindInfluencers, r)
	if err != nil {
		return nil, err
	}
	out := make([]model.Influencer, 0, len(t.rows))
	err = t.each(func(_ int, c *cursor) error {
		inf := model.Influencer{
			ID:        c.str("id"),
			Name:      c.str("influencer_name"),
			Platform:  c.str("platform"),
			Niche:     c.str("niche"),
			Followers: c.count("followers"),
			Gender:    c.str("gender"),
		}
		if c.err != nil {
			return nil
		}
		if err := validate.Struct(&inf); err != nil {
			return err
		}
		out = append(out, inf)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func ParsePosts(r io.Reader) ([]model.Post, error) {
	t, err := readTable(KindPosts, r)
	if err != nil {
		return nil, err
	}
	out := make([]model.Post, 0, len(t.rows))
	err = t.each(func(_ int, c *cursor) error {
		p := model.Post{
			InfluencerID: c.str("influencer_id"),
			Platform:     c.str("platform"),
			Date:         c.date("date"),
			URL:          c.str("url"),
			Caption:      c.str("caption"),
			Reach:        c.count("reach"),
			Likes:        c.count("likes"),
			Comments:     c.count("comments"),
		}
		if c.err != nil {
			return nil
		}
		if err := validate.Struct(&p); err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func ParseCampaigns(r io.Reader) ([]model.CampaignRecord, error) {
	t, err := readTable(KindCampaigns, r)
	if err != nil {
		return nil, err
	}
	out := make([]model.CampaignRecord, 0, len(t.rows))
	err = t.each(func(_ int, c *cursor) error {
		rec := model.CampaignRecord{
			Source:       c.str("source"),
			Campaign:     c.str("campaign"),
			InfluencerID: c.str("influencer_id"),
			UserID:       c.str("user_id"),
			Product:      c.str("product"),
			Date:         c.date("date"),
			Orders:       c.count("orders"),
			Revenue:      c.money("revenue"),
			Brand:        c.str("brand"),
			Cost:         c.money("cost"),
		}
		if c.err != nil {
			return nil
		}
		if err := validate.Struct(&rec); err != nil {
			return err
		}
		rec.Derive()
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func ParsePayouts(r io.Reader) ([]model.Payout, error) {
	t, err := readTable(KindPayouts, r)
	if err != nil {
		return nil, err
	}
	out := make([]model.Payout, 0, len(t.rows))
	err = t.each(func(_ int, c *cursor) error {
		p := model.Payout{
			InfluencerID: c.str("influencer_id"),
			Basis:        strings.ToLower(c.str("basis")),
			Rate:         c.money("rate"),
			Orders:       c.count("orders"),
		}
		if c.err != nil {
			return nil
		}
		if err := validate.Struct(&p); err != nil {
			return err
		}
		p.Derive()
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
