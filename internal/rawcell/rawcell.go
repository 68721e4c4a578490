// Package rawcell normalizes the loosely-typed cell shapes produced by
// tabular parameter sources before typed coercion runs. Sources hand back
// plain scalars most of the time, but labeled selections, rich-text runs and
// wrapper objects show up too; this package collapses those into plain text
// and leaves genuine scalars untouched.
package rawcell

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Flatten collapses labeled or composite cell values into plain text and
// passes scalar values through unchanged. Composite shapes it understands:
// option/label objects ({"text": ..}, {"label": ..}, {"value": ..},
// {"name": ..}), rich-text runs ([]any of such objects), and plain string
// slices (joined with commas).
func Flatten(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time, json.Number:
		// Scalar despite implementing fmt.Stringer.
		return value
	case []byte:
		return string(v)
	case []any:
		return flattenList(v)
	case map[string]any:
		return flattenObject(v)
	case fmt.Stringer:
		return v.String()
	default:
		return value
	}
}

func flattenList(items []any) string {
	if isRichText(items) {
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if part := flattenToString(item); part != "" {
				parts = append(parts, part)
			}
		}
		return strings.Join(parts, " ")
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if part := flattenToString(item); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ",")
}

func flattenObject(obj map[string]any) string {
	for _, key := range []string{"text", "label", "value", "name"} {
		if nested, ok := obj[key]; ok {
			if text := flattenToString(nested); text != "" {
				return text
			}
		}
	}
	if b, err := json.Marshal(obj); err == nil {
		return strings.TrimSpace(string(b))
	}
	return ""
}

func flattenToString(value any) string {
	flat := Flatten(value)
	if s, ok := flat.(string); ok {
		return strings.TrimSpace(s)
	}
	if s, ok := String(flat); ok {
		return s
	}
	return ""
}

func isRichText(items []any) bool {
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			if _, hasText := m["text"]; hasText {
				return true
			}
		}
	}
	return false
}

// String renders a scalar cell value as text. The second return is false for
// values with no sensible text form (composites should be flattened first).
func String(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	case bool:
		if v {
			return "true", true
		}
		return "false", true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return FormatFloat(float64(v)), true
	case float64:
		return FormatFloat(v), true
	case json.Number:
		return strings.TrimSpace(v.String()), true
	case time.Time:
		return v.Format(time.RFC3339), true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

// Float reads a native numeric cell value as float64. Strings and booleans
// are deliberately excluded; the coercer handles those per target.
func Float(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, true
		}
	}
	return 0, false
}

// IsMissing reports whether a cell value is natively missing: nil, or a
// floating-point NaN. Textual missing tokens are the coercer's concern, not
// this package's.
func IsMissing(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	}
	return false
}

// FormatFloat renders a float without a trailing ".0" for whole values.
func FormatFloat(v float64) string {
	if !math.IsNaN(v) && !math.IsInf(v, 0) && math.Mod(v, 1) == 0 && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
