package datasets

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is an ordered header plus ordered rows of string cells.
// Row order is the authored order and is never changed by this package.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Len returns the number of data rows (header excluded).
func (t Table) Len() int { return len(t.Rows) }

// ColumnIndex returns the position of a column or -1.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the header carries the column.
func (t Table) HasColumn(name string) bool { return t.ColumnIndex(name) >= 0 }

// Column returns the cells of one column in row order.
func (t Table) Column(name string) ([]string, bool) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			out = append(out, row[idx])
		} else {
			out = append(out, "")
		}
	}
	return out, true
}

// FloatColumn parses one column as plain decimals.
// The bool is false when the column is absent; err is set on a bad cell.
func (t Table) FloatColumn(name string) ([]float64, bool, error) {
	cells, ok := t.Column(name)
	if !ok {
		return nil, false, nil
	}
	out := make([]float64, len(cells))
	for i, cell := range cells {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, true, fmt.Errorf("column %s row %d: invalid number %q: %w", name, i+1, cell, err)
		}
		out[i] = v
	}
	return out, true, nil
}

// FilterIn keeps the rows whose cell in column is one of values.
// Kept rows stay in their original order.
func (t Table) FilterIn(column string, values []string) (Table, error) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return Table{}, fmt.Errorf("filter: column %q not found in %s", column, t.Name)
	}

	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}

	filtered := Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, 0, len(t.Rows)),
	}
	for _, row := range t.Rows {
		if idx >= len(row) {
			continue
		}
		if _, ok := allowed[row[idx]]; ok {
			filtered.Rows = append(filtered.Rows, append([]string(nil), row...))
		}
	}
	return filtered, nil
}

// FormatNumber renders a value as the shortest plain decimal ("245", "0.8").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseNumber(table string, row int, column, cell string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, fmt.Errorf("%s row %d: %s: invalid number %q: %w", table, row, column, cell, err)
	}
	return v, nil
}
