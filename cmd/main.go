package main

import (
	"os"

	"github.com/paramcell/ParamCell/internal/env"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "paramcell",
	Short: "Coerce loosely-typed parameter cells into fixed target types",
	Long:  "paramcell coerces raw values from one-row parameter tables (CSV, SQLite, literals) into text, integer, number, boolean, date or datetime, with missing-token detection, clamping and typed fallback defaults.",
}

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	rootCmd.AddCommand(
		newValueCmd(),
		newFetchCmd(),
	)
	_ = env.Ensure()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("paramcell command failed")
	}
}
