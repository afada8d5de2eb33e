// Package importer tokenizes delimited text into import rows. All
// delimiter and quoting concerns live here; the catalog engine only
// ever sees the (name, stock, price, category) tuples.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"go-inventory-admin/internal/model"
)

// ReadRows parses CSV input into import rows. There is no header
// line, the first record is data. Short records are padded with empty
// fields, extra columns are ignored, and fully blank records are
// dropped.
func ReadRows(r io.Reader) ([]model.ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []model.ImportRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if blank(record) {
			continue
		}
		rows = append(rows, model.ImportRow{
			Name:     field(record, 0),
			Stock:    field(record, 1),
			Price:    field(record, 2),
			Category: field(record, 3),
		})
	}
	return rows, nil
}

func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

func blank(record []string) bool {
	for _, f := range record {
		if f != "" {
			return false
		}
	}
	return true
}
