package export

import (
	"bytes"
	"fmt"

	"Pulseboard/internal/model"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// XLSXBytes 生成单工作表的 Excel 文件，数值列写为数字
func XLSXBytes(t *Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := t.Name
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range t.Rows {
		values := make([]any, len(row))
		for j, cell := range row {
			values[j] = xlsxValue(cell)
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func xlsxValue(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64()
	case model.Ratio:
		if !x.Valid {
			return nil
		}
		return x.Value
	default:
		return x
	}
}
