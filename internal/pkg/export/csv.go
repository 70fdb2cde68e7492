package export

import (
	"bytes"
	"encoding/csv"
	"io"
)

const ContentTypeCSV = "text/csv"

// WriteCSV 表头一行，之后每条记录一行，列顺序与 Header 一致
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	record := make([]string, len(t.Header))
	for _, row := range t.Rows {
		for i, cell := range row {
			record[i] = formatText(cell)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func CSVBytes(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
