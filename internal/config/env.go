package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	envload "github.com/paramcell/ParamCell/internal/env"
)

// Environment keys overriding coercion defaults. Date formats use "|" as the
// separator because Go time layouts may themselves contain commas.
const (
	EnvTimezone      = "PARAMCELL_TIMEZONE"
	EnvDateFormats   = "PARAMCELL_DATE_FORMATS"
	EnvMissingTokens = "PARAMCELL_MISSING_TOKENS"
)

var ensureOnce sync.Once

func ensureEnvLoaded() {
	ensureOnce.Do(func() {
		_ = envload.Ensure()
	})
}

// String returns the trimmed environment variable or fallback when unset.
func String(key, fallback string) string {
	ensureEnvLoaded()
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

// Int returns an integer environment variable or fallback when invalid.
func Int(key string, fallback int) int {
	ensureEnvLoaded()
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

// Bool parses a boolean environment variable.
func Bool(key string, fallback bool) bool {
	ensureEnvLoaded()
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		lower := strings.ToLower(val)
		if lower == "1" || lower == "true" || lower == "yes" {
			return true
		}
		if lower == "0" || lower == "false" || lower == "no" {
			return false
		}
	}
	return fallback
}

// Timezone resolves PARAMCELL_TIMEZONE into a location, or fallback when
// unset or unknown.
func Timezone(fallback *time.Location) *time.Location {
	name := String(EnvTimezone, "")
	if name == "" {
		return fallback
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fallback
	}
	return loc
}

// DateFormats resolves PARAMCELL_DATE_FORMATS ("|"-separated Go layouts), or
// fallback when unset.
func DateFormats(fallback []string) []string {
	raw := String(EnvDateFormats, "")
	if raw == "" {
		return fallback
	}
	parts := make([]string, 0, 4)
	for _, part := range strings.Split(raw, "|") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return fallback
	}
	return parts
}

// MissingTokens resolves PARAMCELL_MISSING_TOKENS (comma-separated, entries
// kept verbatim so an empty entry stands for the empty string), or fallback
// when unset.
func MissingTokens(fallback []string) []string {
	ensureEnvLoaded()
	raw, ok := os.LookupEnv(EnvMissingTokens)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	return strings.Split(raw, ",")
}
