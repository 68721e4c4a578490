package paramcell

import (
	"strings"

	"github.com/paramcell/ParamCell/internal/rawcell"
)

var (
	trueTokens  = []string{"true", "t", "yes", "y", "1"}
	falseTokens = []string{"false", "f", "no", "n", "0"}
)

// coerceBoolean passes booleans through, treats numbers as "non-zero is
// true", and matches text against the fixed token sets. Token comparison
// trims and lower-cases regardless of Options.TrimWhitespace.
func coerceBoolean(raw any, opts Options) Value {
	switch v := raw.(type) {
	case bool:
		return BooleanValue(v)
	case string:
		token := strings.ToLower(strings.TrimSpace(v))
		for _, t := range trueTokens {
			if token == t {
				return BooleanValue(true)
			}
		}
		for _, f := range falseTokens {
			if token == f {
				return BooleanValue(false)
			}
		}
		return fallback(opts)
	}
	if f, ok := rawcell.Float(raw); ok {
		return BooleanValue(f != 0)
	}
	return fallback(opts)
}
