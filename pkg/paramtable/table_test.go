package paramtable

import (
	"testing"

	paramcell "github.com/paramcell/ParamCell"
)

func TestTableLookup(t *testing.T) {
	table := New([]string{"name", "timeout", "enabled"}, [][]any{
		{"run A", "30", "yes"},
	})

	if got := table.RowCount(); got != 1 {
		t.Fatalf("RowCount: got %d", got)
	}
	if got := table.Cell(0, "timeout"); got != "30" {
		t.Fatalf("Cell: got %v", got)
	}
	if got := table.Cell(0, "absent"); got != nil {
		t.Fatalf("unknown column must read as missing, got %v", got)
	}
	if got := table.Cell(2, "timeout"); got != nil {
		t.Fatalf("out-of-range row must read as missing, got %v", got)
	}
}

func TestTableRaggedRow(t *testing.T) {
	table := New([]string{"a", "b"}, [][]any{{"only-a"}})
	if got := table.Cell(0, "b"); got != nil {
		t.Fatalf("short row must read as missing, got %v", got)
	}
	if got := table.Cell(0, "a"); got != "only-a" {
		t.Fatalf("short row intact cell: got %v", got)
	}
}

func TestTableAppendRow(t *testing.T) {
	table := New([]string{"a"}, nil)
	table.AppendRow([]any{1})
	table.AppendRow([]any{2})
	if table.RowCount() != 2 || table.Cell(1, "a") != 2 {
		t.Fatalf("AppendRow: got %d rows, cell %v", table.RowCount(), table.Cell(1, "a"))
	}
}

func TestMapRow(t *testing.T) {
	table := MapRow(map[string]any{"b": 2, "a": 1})
	cols := table.Columns()
	if len(cols) != 2 || cols[0] != "a" || cols[1] != "b" {
		t.Fatalf("MapRow columns not sorted: %v", cols)
	}
	if table.RowCount() != 1 || table.Cell(0, "b") != 2 {
		t.Fatalf("MapRow cell: got %v", table.Cell(0, "b"))
	}
}

func TestFetchThroughTable(t *testing.T) {
	table := New([]string{"threshold", "mode"}, [][]any{
		{"2.5", "fast"},
	})
	got := paramcell.Fetch(table, "threshold", 0, paramcell.DefaultOptions(paramcell.TargetInteger))
	if got.IsMissing() || got.Integer() != 2 {
		t.Fatalf("fetch threshold: got %v", got)
	}
	miss := paramcell.Fetch(table, "nope", 0, paramcell.DefaultOptions(paramcell.TargetText))
	if !miss.IsMissing() {
		t.Fatalf("fetch unknown column: expected sentinel")
	}
}
