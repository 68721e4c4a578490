package paramcell

import (
	"strings"
	"time"
)

// Target identifies the type a raw cell value is coerced into.
type Target string

const (
	TargetText     Target = "text"
	TargetInteger  Target = "integer"
	TargetNumber   Target = "number"
	TargetBoolean  Target = "boolean"
	TargetDate     Target = "date"
	TargetDatetime Target = "datetime"
)

// ParseTarget maps a case-insensitive target name to a Target.
func ParseTarget(raw string) (Target, bool) {
	switch Target(strings.ToLower(strings.TrimSpace(raw))) {
	case TargetText:
		return TargetText, true
	case TargetInteger:
		return TargetInteger, true
	case TargetNumber:
		return TargetNumber, true
	case TargetBoolean:
		return TargetBoolean, true
	case TargetDate:
		return TargetDate, true
	case TargetDatetime:
		return TargetDatetime, true
	}
	return "", false
}

// IntegerStrategy selects how fractional numbers collapse to integers.
type IntegerStrategy string

const (
	// StrategyRound rounds half-to-even: 2.5 -> 2, 3.5 -> 4.
	StrategyRound    IntegerStrategy = "round"
	StrategyFloor    IntegerStrategy = "floor"
	StrategyCeiling  IntegerStrategy = "ceiling"
	StrategyTruncate IntegerStrategy = "truncate"
)

// ParseIntegerStrategy maps a case-insensitive strategy name to an IntegerStrategy.
func ParseIntegerStrategy(raw string) (IntegerStrategy, bool) {
	switch IntegerStrategy(strings.ToLower(strings.TrimSpace(raw))) {
	case StrategyRound:
		return StrategyRound, true
	case StrategyFloor:
		return StrategyFloor, true
	case StrategyCeiling:
		return StrategyCeiling, true
	case StrategyTruncate:
		return StrategyTruncate, true
	}
	return "", false
}

// DefaultMissingTokens returns the text values treated as missing when no
// explicit token list is configured. Matching is exact (case sensitive).
func DefaultMissingTokens() []string {
	return []string{"", "NA", "NaN", "null", "Null", "NULL"}
}

// DefaultDateFormats returns the ordered date layouts tried when no explicit
// list is configured: ISO, US, day-month-name, slash ISO.
func DefaultDateFormats() []string {
	return []string{"2006-01-02", "1/2/2006", "2-Jan-2006", "2006/1/2"}
}

// Options bundles every knob of a single coercion. Build it with
// DefaultOptions and override fields as needed; a zero-value literal disables
// whitespace trimming, which is almost never what callers want.
type Options struct {
	// Target is the required output type.
	Target Target
	// Default, when non-nil, is returned (represented in the target type)
	// whenever the pipeline would otherwise produce the missing sentinel.
	Default any
	// IntegerStrategy governs number->integer collapse, default StrategyRound.
	IntegerStrategy IntegerStrategy
	// MakePositive takes the absolute value before clamping (number/integer).
	MakePositive bool
	// MinVal / MaxVal are inclusive clamp bounds (number/integer), applied
	// after the integer strategy. Nil means unbounded.
	MinVal *float64
	MaxVal *float64
	// TrimWhitespace strips leading/trailing whitespace from text input.
	TrimWhitespace bool
	// MissingTokens are text values treated as missing after trimming.
	// Nil means DefaultMissingTokens; an empty non-nil slice disables
	// token matching entirely.
	MissingTokens []string
	// DateFormats are ordered Go layouts tried for date (and, after the
	// built-in datetime layouts, datetime) text. Nil means DefaultDateFormats.
	DateFormats []string
	// Location interprets datetime text and date<->datetime conversion,
	// default UTC.
	Location *time.Location
}

// DefaultOptions returns an Options for target with documented defaults:
// round strategy, trimming on, standard missing tokens and date layouts, UTC.
func DefaultOptions(target Target) Options {
	return Options{
		Target:          target,
		IntegerStrategy: StrategyRound,
		TrimWhitespace:  true,
		MissingTokens:   DefaultMissingTokens(),
		DateFormats:     DefaultDateFormats(),
		Location:        time.UTC,
	}
}

// Bound is a convenience for populating MinVal/MaxVal.
func Bound(v float64) *float64 {
	return &v
}

func (o Options) normalized() Options {
	if o.IntegerStrategy == "" {
		o.IntegerStrategy = StrategyRound
	}
	if o.MissingTokens == nil {
		o.MissingTokens = DefaultMissingTokens()
	}
	if o.DateFormats == nil {
		o.DateFormats = DefaultDateFormats()
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	return o
}
