package paramcell

import (
	"math"
	"time"

	"github.com/paramcell/ParamCell/internal/rawcell"
)

// Built-in datetime layouts tried before the caller's DateFormats. Date-only
// layouts generally fail against text carrying a time component, so the two
// lists compose without ambiguity.
var datetimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006 15:04:05",
	"2006/1/2 15:04:05",
	"2-Jan-2006 15:04:05",
}

// Last-resort layouts for datetime text that no explicit pattern matched.
var flexibleDatetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"20060102150405",
}

// coerceDate passes dates through, reduces datetimes to their calendar date
// in the configured location, tries each DateFormats layout in order for
// text, and reads numbers as whole-day offsets from 1970-01-01.
func coerceDate(raw any, opts Options) Value {
	switch v := raw.(type) {
	case time.Time:
		return DateValue(dateOf(v, opts.Location))
	case string:
		for _, layout := range opts.DateFormats {
			if t, err := time.ParseInLocation(layout, v, opts.Location); err == nil {
				return DateValue(dateOf(t, opts.Location))
			}
		}
		return fallback(opts)
	}
	if f, ok := rawcell.Float(raw); ok {
		epoch := time.Date(1970, time.January, 1, 0, 0, 0, 0, opts.Location)
		return DateValue(epoch.AddDate(0, 0, int(math.Trunc(f))))
	}
	return fallback(opts)
}

// coerceDatetime passes instants through (dates arrive as midnight in the
// configured location, so expansion is implicit), tries the built-in layouts
// then DateFormats then the flexible last-resort list for text, and reads
// numbers as seconds since epoch with fractional seconds honored.
func coerceDatetime(raw any, opts Options) Value {
	switch v := raw.(type) {
	case time.Time:
		return DatetimeValue(v.In(opts.Location))
	case string:
		for _, layout := range datetimeLayouts {
			if t, err := time.ParseInLocation(layout, v, opts.Location); err == nil {
				return DatetimeValue(t)
			}
		}
		for _, layout := range opts.DateFormats {
			if t, err := time.ParseInLocation(layout, v, opts.Location); err == nil {
				return DatetimeValue(t)
			}
		}
		for _, layout := range flexibleDatetimeLayouts {
			if t, err := time.ParseInLocation(layout, v, opts.Location); err == nil {
				return DatetimeValue(t)
			}
		}
		return fallback(opts)
	}
	if f, ok := rawcell.Float(raw); ok {
		sec := math.Trunc(f)
		nanos := int64(math.Round((f - sec) * 1e9))
		return DatetimeValue(time.Unix(int64(sec), nanos).In(opts.Location))
	}
	return fallback(opts)
}

// dateOf reduces an instant to midnight of its calendar date in loc.
func dateOf(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.In(loc).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
