package rawcell

import (
	"math"
	"testing"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  any
	}{
		{"string passthrough", "hello", "hello"},
		{"number passthrough", 123.45, 123.45},
		{"bool passthrough", true, true},
		{"bytes", []byte("raw"), "raw"},
		{"label object", map[string]any{"label": "High"}, "High"},
		{"text object", map[string]any{"text": "note", "style": "bold"}, "note"},
		{"value wrapper", map[string]any{"type": 1, "value": "wrapped"}, "wrapped"},
		{"name object", map[string]any{"name": "Alice", "id": "u1"}, "Alice"},
		{"rich text", []any{map[string]any{"text": "foo"}, map[string]any{"text": "bar"}}, "foo bar"},
		{"multi select", []any{"A", "B"}, "A,B"},
		{"mixed list", []any{"A", 2}, "A,2"},
		{"empty list", []any{}, ""},
	}
	for _, tt := range tests {
		if got := Flatten(tt.input); got != tt.want {
			t.Fatalf("%s: got %#v want %#v", tt.name, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
		ok    bool
	}{
		{"string", "x", "x", true},
		{"int", 42, "42", true},
		{"whole float", 123.0, "123", true},
		{"fractional float", 123.45, "123.45", true},
		{"bool", false, "false", true},
		{"unsupported", struct{}{}, "", false},
	}
	for _, tt := range tests {
		got, ok := String(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("%s: got %q/%v want %q/%v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFloat(t *testing.T) {
	if f, ok := Float(int32(7)); !ok || f != 7 {
		t.Fatalf("int32: got %v/%v", f, ok)
	}
	if _, ok := Float("7"); ok {
		t.Fatalf("strings must not read as native numbers")
	}
	if _, ok := Float(true); ok {
		t.Fatalf("bools must not read as native numbers")
	}
}

func TestIsMissing(t *testing.T) {
	if !IsMissing(nil) {
		t.Fatalf("nil must be missing")
	}
	if !IsMissing(math.NaN()) {
		t.Fatalf("NaN must be missing")
	}
	if IsMissing(0.0) || IsMissing("") {
		t.Fatalf("zero and empty text are not natively missing")
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{123, "123"},
		{123.45, "123.45"},
		{-2, "-2"},
		{0.5, "0.5"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.input); got != tt.want {
			t.Fatalf("%v: got %q want %q", tt.input, got, tt.want)
		}
	}
}
