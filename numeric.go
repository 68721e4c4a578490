package paramcell

import (
	"math"
	"strconv"

	"github.com/paramcell/ParamCell/internal/rawcell"
)

// coerceNumeric handles both the number and integer targets. Order matters:
// absolute value first, then the integer strategy, then clamping, so bounds
// always apply to the post-rounding result.
func coerceNumeric(raw any, opts Options) Value {
	f, ok := numericOf(raw)
	if !ok {
		return fallback(opts)
	}
	if opts.MakePositive {
		f = math.Abs(f)
	}
	if opts.Target == TargetInteger {
		f = applyIntegerStrategy(f, opts.IntegerStrategy)
	}
	f = clamp(f, opts.MinVal, opts.MaxVal)
	if opts.Target == TargetInteger {
		return IntegerValue(int64(f))
	}
	return NumberValue(f)
}

func numericOf(raw any) (float64, bool) {
	if b, ok := raw.(bool); ok {
		if b {
			return 1, true
		}
		return 0, true
	}
	if s, ok := raw.(string); ok {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return rawcell.Float(raw)
}

func applyIntegerStrategy(f float64, strategy IntegerStrategy) float64 {
	switch strategy {
	case StrategyFloor:
		return math.Floor(f)
	case StrategyCeiling:
		return math.Ceil(f)
	case StrategyTruncate:
		return math.Trunc(f)
	default:
		return math.RoundToEven(f)
	}
}

func clamp(f float64, min, max *float64) float64 {
	if min != nil && f < *min {
		f = *min
	}
	if max != nil && f > *max {
		f = *max
	}
	return f
}
