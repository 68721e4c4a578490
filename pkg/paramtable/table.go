// Package paramtable provides concrete one-row (and small multi-row)
// parameter table sources for the paramcell coercer: in-memory tables,
// single-row field maps, CSV files and SQLite tables.
package paramtable

import (
	"sort"
)

// Table is an in-memory header-indexed grid satisfying paramcell.Source.
// Cells hold loosely-typed values; ragged rows read as natively missing.
type Table struct {
	header []string
	index  map[string]int
	rows   [][]any
}

// New builds a Table from a header and rows. Duplicate column names keep the
// first position, matching how header-indexed sheets are read.
func New(header []string, rows [][]any) *Table {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	cols := make([]string, len(header))
	copy(cols, header)
	return &Table{header: cols, index: index, rows: rows}
}

// MapRow builds a single-row Table from a fields map, with columns in sorted
// order so lookups stay deterministic.
func MapRow(fields map[string]any) *Table {
	header := make([]string, 0, len(fields))
	for name := range fields {
		header = append(header, name)
	}
	sort.Strings(header)
	row := make([]any, len(header))
	for i, name := range header {
		row[i] = fields[name]
	}
	return New(header, [][]any{row})
}

// Columns returns the column names in table order.
func (t *Table) Columns() []string {
	return t.header
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Cell returns the raw value at (row, column), or nil when the column is
// unknown, the row is out of range, or the row is too short.
func (t *Table) Cell(row int, column string) any {
	if row < 0 || row >= len(t.rows) {
		return nil
	}
	col, ok := t.index[column]
	if !ok {
		return nil
	}
	cells := t.rows[row]
	if col >= len(cells) {
		return nil
	}
	return cells[col]
}

// AppendRow adds a data row.
func (t *Table) AppendRow(cells []any) {
	t.rows = append(t.rows, cells)
}
