package paramcell

import (
	"strconv"
	"time"
)

// Value is the typed result of a coercion: a target tag plus either a payload
// of that type or the missing flag. The tag always equals the requested
// target, so callers never see a raw or untyped value, even on failure.
type Value struct {
	target  Target
	missing bool
	text    string
	integer int64
	number  float64
	boolean bool
	instant time.Time
}

// MissingValue returns the typed-missing sentinel for target.
func MissingValue(target Target) Value {
	return Value{target: target, missing: true}
}

// TextValue wraps a text result.
func TextValue(s string) Value {
	return Value{target: TargetText, text: s}
}

// IntegerValue wraps an integer result.
func IntegerValue(n int64) Value {
	return Value{target: TargetInteger, integer: n}
}

// NumberValue wraps a floating-point result.
func NumberValue(f float64) Value {
	return Value{target: TargetNumber, number: f}
}

// BooleanValue wraps a boolean result.
func BooleanValue(b bool) Value {
	return Value{target: TargetBoolean, boolean: b}
}

// DateValue wraps a calendar-date result. Coerce always stores dates as
// midnight in the configured location.
func DateValue(t time.Time) Value {
	return Value{target: TargetDate, instant: t}
}

// DatetimeValue wraps an instant result.
func DatetimeValue(t time.Time) Value {
	return Value{target: TargetDatetime, instant: t}
}

// Target reports which target type this value carries.
func (v Value) Target() Target {
	return v.target
}

// IsMissing reports whether this value is the typed-missing sentinel.
func (v Value) IsMissing() bool {
	return v.missing
}

// Text returns the text payload; zero when missing or another target.
func (v Value) Text() string {
	return v.text
}

// Integer returns the integer payload; zero when missing or another target.
func (v Value) Integer() int64 {
	return v.integer
}

// Number returns the number payload; zero when missing or another target.
func (v Value) Number() float64 {
	return v.number
}

// Boolean returns the boolean payload; false when missing or another target.
func (v Value) Boolean() bool {
	return v.boolean
}

// Time returns the date/datetime payload; zero when missing or another target.
func (v Value) Time() time.Time {
	return v.instant
}

// Interface returns the payload as its native Go type, or nil when missing.
func (v Value) Interface() any {
	if v.missing {
		return nil
	}
	switch v.target {
	case TargetText:
		return v.text
	case TargetInteger:
		return v.integer
	case TargetNumber:
		return v.number
	case TargetBoolean:
		return v.boolean
	case TargetDate, TargetDatetime:
		return v.instant
	}
	return nil
}

// String renders the value for display. The missing sentinel renders as "NA".
func (v Value) String() string {
	if v.missing {
		return "NA"
	}
	switch v.target {
	case TargetText:
		return v.text
	case TargetInteger:
		return strconv.FormatInt(v.integer, 10)
	case TargetNumber:
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	case TargetBoolean:
		return strconv.FormatBool(v.boolean)
	case TargetDate:
		return v.instant.Format("2006-01-02")
	case TargetDatetime:
		return v.instant.Format(time.RFC3339)
	}
	return ""
}
