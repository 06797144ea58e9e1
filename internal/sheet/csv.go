package sheet

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sheet is one parsed survey export: canonical headers plus one string map
// per school row. Values are trimmed but not yet cleaned; cleaning happens
// when the survey layer builds typed records.
type Sheet struct {
	Headers []string
	Rows    []map[string]string
}

// Parse reads a CSV export, normalizes its headers and verifies that every
// column the pipeline depends on is present. A missing column means the
// upstream sheet schema drifted and the whole load is rejected.
func Parse(src io.Reader) (*Sheet, error) {
	r := csv.NewReader(bufio.NewReader(src))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, errors.New("csv has no data rows")
	}

	header := records[0]
	// Handle BOM on first header cell
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	headers := make([]string, len(header))
	col := map[string]int{}
	for i, h := range header {
		canonical := NormalizeHeader(h)
		headers[i] = canonical
		col[canonical] = i
	}

	for _, k := range requiredColumns() {
		if _, ok := col[k]; !ok {
			return nil, fmt.Errorf("missing required column: %s", k)
		}
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for rowIdx := 1; rowIdx < len(records); rowIdx++ {
		rec := records[rowIdx]
		row := make(map[string]string, len(headers))
		for name, i := range col {
			if i >= len(rec) {
				row[name] = ""
				continue
			}
			row[name] = strings.TrimSpace(rec[i])
		}
		rows = append(rows, row)
	}

	return &Sheet{Headers: headers, Rows: rows}, nil
}
