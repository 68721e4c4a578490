package main

import (
	"fmt"
	"strings"
	"time"

	paramcell "github.com/paramcell/ParamCell"
	"github.com/paramcell/ParamCell/internal/config"
	"github.com/spf13/cobra"
)

// coerceFlags carries the coercion knobs shared by the value and fetch
// subcommands. Environment defaults (PARAMCELL_*) apply first; explicit
// flags win.
type coerceFlags struct {
	target        string
	defaultRaw    string
	strategy      string
	makePositive  bool
	minVal        float64
	maxVal        float64
	noTrim        bool
	missingTokens string
	dateFormats   string
	timezone      string
}

func (f *coerceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.target, "target", "", "Target type: text, integer, number, boolean, date, datetime")
	cmd.Flags().StringVar(&f.defaultRaw, "default", "", "Fallback value returned when coercion fails")
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "Integer strategy: round, floor, ceiling, truncate")
	cmd.Flags().BoolVar(&f.makePositive, "make-positive", false, "Take the absolute value before clamping")
	cmd.Flags().Float64Var(&f.minVal, "min", 0, "Inclusive lower clamp bound")
	cmd.Flags().Float64Var(&f.maxVal, "max", 0, "Inclusive upper clamp bound")
	cmd.Flags().BoolVar(&f.noTrim, "no-trim", !config.Bool("PARAMCELL_TRIM", true), "Keep leading/trailing whitespace on text input")
	cmd.Flags().StringVar(&f.missingTokens, "missing-tokens", "", "Comma-separated text values treated as missing, overriding $"+config.EnvMissingTokens)
	cmd.Flags().StringVar(&f.dateFormats, "date-formats", "", "Pipe-separated Go date layouts, overriding $"+config.EnvDateFormats)
	cmd.Flags().StringVar(&f.timezone, "timezone", "", "IANA timezone for datetime interpretation, overriding $"+config.EnvTimezone)
	_ = cmd.MarkFlagRequired("target")
}

func (f *coerceFlags) build(cmd *cobra.Command) (paramcell.Options, error) {
	target, ok := paramcell.ParseTarget(f.target)
	if !ok {
		return paramcell.Options{}, fmt.Errorf("unknown target %q", f.target)
	}
	opts := paramcell.DefaultOptions(target)
	opts.Location = config.Timezone(opts.Location)
	opts.DateFormats = config.DateFormats(opts.DateFormats)
	opts.MissingTokens = config.MissingTokens(opts.MissingTokens)

	if f.strategy != "" {
		strategy, ok := paramcell.ParseIntegerStrategy(f.strategy)
		if !ok {
			return paramcell.Options{}, fmt.Errorf("unknown integer strategy %q", f.strategy)
		}
		opts.IntegerStrategy = strategy
	}
	if cmd.Flags().Changed("default") {
		opts.Default = f.defaultRaw
	}
	opts.MakePositive = f.makePositive
	if cmd.Flags().Changed("min") {
		opts.MinVal = paramcell.Bound(f.minVal)
	}
	if cmd.Flags().Changed("max") {
		opts.MaxVal = paramcell.Bound(f.maxVal)
	}
	opts.TrimWhitespace = !f.noTrim
	if f.missingTokens != "" {
		opts.MissingTokens = strings.Split(f.missingTokens, ",")
	}
	if f.dateFormats != "" {
		opts.DateFormats = splitLayouts(f.dateFormats)
	}
	if f.timezone != "" {
		loc, err := time.LoadLocation(f.timezone)
		if err != nil {
			return paramcell.Options{}, fmt.Errorf("unknown timezone %q", f.timezone)
		}
		opts.Location = loc
	}
	return opts, nil
}

func splitLayouts(raw string) []string {
	parts := make([]string, 0, 4)
	for _, part := range strings.Split(raw, "|") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
