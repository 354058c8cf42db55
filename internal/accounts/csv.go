package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
)

const (
	numFields   = 2
	colName     = 0
	colCategory = 1
)

// ReadChart reads a chart-of-accounts CSV (account_name,category) into a
// normalized-name → category map.
func ReadChart(r io.Reader) (map[string]Category, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chart CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	chart := make(map[string]Category, len(records)-1)
	for i, rec := range records[1:] {
		name := Normalize(rec[colName])
		if name == "" {
			return nil, fmt.Errorf("row %d: blank account name", i+2)
		}
		if !ValidCategory(rec[colCategory]) {
			return nil, fmt.Errorf("row %d: unknown category %q", i+2, rec[colCategory])
		}
		chart[name] = Category(Normalize(rec[colCategory]))
	}
	return chart, nil
}

// WriteChart writes a chart map as a CSV with a header row, account names
// sorted for stable output.
func WriteChart(w io.Writer, chart map[string]Category) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_name", "category"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	names := make([]string, 0, len(chart))
	for name := range chart {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := cw.Write([]string{name, string(chart[name])}); err != nil {
			return fmt.Errorf("writing row for %q: %w", name, err)
		}
	}
	return cw.Error()
}
