package ingest

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// row is one data line of a source file as a column-name → value mapping.
// Line is the 1-based line number in the file, kept for skip logs and for
// synthesized submission ids.
type row struct {
	Line   int
	Fields map[string]string
}

// table holds a parsed semicolon-separated file: the header in file order
// plus every data row.
type table struct {
	Headers []string
	Rows    []row
}

// parseTable reads a decoded CSV payload into header-mapped rows. Rows with
// fewer fields than the header keep their known columns; extra fields are
// dropped. Unknown columns survive here and are ignored by the callers.
func parseTable(text string) (*table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	lines, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	headers := make([]string, len(lines[0]))
	for i, h := range lines[0] {
		headers[i] = strings.TrimSpace(h)
	}

	t := &table{Headers: headers}
	for i, line := range lines[1:] {
		fields := make(map[string]string, len(headers))
		for j, h := range headers {
			if j < len(line) {
				fields[h] = strings.TrimSpace(line[j])
			}
		}
		t.Rows = append(t.Rows, row{Line: i + 2, Fields: fields})
	}
	return t, nil
}

// missingColumns returns the required columns absent from the header.
func (t *table) missingColumns(required ...string) []string {
	var missing []string
	for _, want := range required {
		found := false
		for _, h := range t.Headers {
			if h == want {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, want)
		}
	}
	return missing
}
