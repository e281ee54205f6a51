package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// rawTable is a parsed delimited-text export before typing.
type rawTable struct {
	headers []string
	index   map[string]int
	rows    [][]string
}

// headerAliases maps legacy export column names onto the canonical ones.
var headerAliases = map[string]string{
	"meta_data": "metadata",
	"duration_": "duration",
}

// readTable parses CSV bytes into a rawTable with normalized headers.
// Malformed rows are skipped; a malformed header is an error (fatal upstream).
func readTable(r io.Reader) (*rawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	t := &rawTable{
		headers: make([]string, len(headers)),
		index:   make(map[string]int, len(headers)),
	}
	for i, h := range headers {
		key := normalizeHeader(h)
		if alias, ok := headerAliases[key]; ok {
			if _, taken := t.index[alias]; !taken {
				key = alias
			}
		}
		t.headers[i] = key
		if _, exists := t.index[key]; !exists {
			t.index[key] = i
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}

// normalizeHeader lowercases and snake-cases a column name.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	replacer := strings.NewReplacer(" ", "_", "\n", "_", "\t", "_")
	return replacer.Replace(h)
}

func (t *rawTable) has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// cell returns the trimmed value at (row, col), or "" when absent.
func (t *rawTable) cell(row int, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(t.rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.rows[row][i])
}

// numericColumn parses a column as float64, imputing unparseable or missing
// cells with the column median, mirroring the original export cleaning step.
func (t *rawTable) numericColumn(col string) []float64 {
	n := len(t.rows)
	vals := make([]float64, n)
	ok := make([]bool, n)
	var present []float64

	for i := 0; i < n; i++ {
		raw := t.cell(i, col)
		if raw == "" {
			continue
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			vals[i] = f
			ok[i] = true
			present = append(present, f)
		}
	}

	med := median(present)
	for i := 0; i < n; i++ {
		if !ok[i] {
			vals[i] = med
		}
	}
	return vals
}

// median returns the middle value (average of the two middles for even n),
// or 0 for an empty slice.
func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
