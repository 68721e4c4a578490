// Package paramcell coerces loosely-typed cells from one-row parameter
// tables into a fixed set of target types (text, integer, number, boolean,
// date, datetime) with tolerant fallback semantics: every failure resolves to
// the caller's default or a typed-missing sentinel, never to an error.
package paramcell

import (
	"strings"

	"github.com/paramcell/ParamCell/internal/rawcell"
)

// Source is the minimal contract a tabular parameter container must satisfy:
// column existence via Columns, row bounds via RowCount, and cell reads that
// return a raw scalar or nil for a natively missing cell. Implementations
// live in pkg/paramtable; anything satisfying the interface works.
type Source interface {
	Columns() []string
	RowCount() int
	Cell(row int, column string) any
}

// Fetch looks up a cell by column name and row index, then coerces it with
// Coerce. A nil source, unknown column, or out-of-range row resolves through
// the same fallback path as a missing value — extraction failures are never
// surfaced as distinct errors.
func Fetch(src Source, column string, row int, opts Options) Value {
	opts = opts.normalized()
	if src == nil || row < 0 || row >= src.RowCount() || !hasColumn(src, column) {
		return fallback(opts)
	}
	return Coerce(src.Cell(row, column), opts)
}

func hasColumn(src Source, name string) bool {
	for _, col := range src.Columns() {
		if col == name {
			return true
		}
	}
	return false
}

// Coerce converts a raw cell value to opts.Target through a fixed pipeline:
// normalization (labeled values flatten to text, optional trimming, missing
// token substitution), the missing check, then target-specific conversion.
// The result's target tag always equals opts.Target; any failure produces
// opts.Default represented in the target type, or the typed-missing sentinel.
// Coerce is pure and safe for concurrent use.
func Coerce(raw any, opts Options) Value {
	opts = opts.normalized()

	if v, ok := raw.(Value); ok {
		raw = v.Interface()
	}
	raw = rawcell.Flatten(raw)

	if s, ok := raw.(string); ok {
		if opts.TrimWhitespace {
			s = strings.TrimSpace(s)
			raw = s
		}
		if isMissingToken(s, opts.MissingTokens) {
			raw = nil
		}
	}
	if rawcell.IsMissing(raw) {
		return fallback(opts)
	}

	switch opts.Target {
	case TargetText:
		return coerceText(raw, opts)
	case TargetBoolean:
		return coerceBoolean(raw, opts)
	case TargetInteger, TargetNumber:
		return coerceNumeric(raw, opts)
	case TargetDate:
		return coerceDate(raw, opts)
	case TargetDatetime:
		return coerceDatetime(raw, opts)
	}
	return fallback(opts)
}

// Token matching is exact: case and format sensitive, applied only to text.
func isMissingToken(s string, tokens []string) bool {
	for _, token := range tokens {
		if s == token {
			return true
		}
	}
	return false
}

// fallback is the single path shared by every failure: extraction misses,
// missing values, and unparseable input all land here. A configured default
// is re-represented in the target type through a strict pass with numeric
// transforms and token matching disabled, so it comes back exactly as given;
// a default that cannot be represented degrades to the sentinel.
func fallback(opts Options) Value {
	if opts.Default == nil {
		return MissingValue(opts.Target)
	}
	strict := Options{
		Target:          opts.Target,
		IntegerStrategy: opts.IntegerStrategy,
		MissingTokens:   []string{},
		DateFormats:     opts.DateFormats,
		Location:        opts.Location,
	}
	return Coerce(opts.Default, strict)
}

func coerceText(raw any, opts Options) Value {
	if s, ok := raw.(string); ok {
		return TextValue(s)
	}
	if s, ok := rawcell.String(raw); ok {
		return TextValue(s)
	}
	return fallback(opts)
}
