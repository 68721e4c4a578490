package main

import (
	"fmt"
	"strings"

	paramcell "github.com/paramcell/ParamCell"
	"github.com/paramcell/ParamCell/internal/config"
	"github.com/paramcell/ParamCell/pkg/paramtable"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newFetchCmd() *cobra.Command {
	flags := &coerceFlags{}
	var (
		flagColumn string
		flagRow    int
		flagCSV    string
		flagDB     string
		flagTable  string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Coerce a cell from a parameter table",
		Long:  "Loads a parameter table from a CSV file or SQLite database, extracts the cell at (--row, --column) and coerces it to the requested target type.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.build(cmd)
			if err != nil {
				return err
			}
			if strings.TrimSpace(flagColumn) == "" {
				return fmt.Errorf("--column is required")
			}

			var src *paramtable.Table
			switch {
			case flagCSV != "" && flagDB != "":
				return fmt.Errorf("--csv and --db are mutually exclusive")
			case flagCSV != "":
				src, err = paramtable.LoadCSV(flagCSV)
			case flagDB != "":
				src, err = paramtable.LoadSQLite(flagDB, flagTable)
			default:
				return fmt.Errorf("one of --csv or --db is required")
			}
			if err != nil {
				return err
			}

			result := paramcell.Fetch(src, flagColumn, flagRow, opts)
			log.Debug().
				Str("column", flagColumn).
				Int("row", flagRow).
				Str("target", string(result.Target())).
				Bool("missing", result.IsMissing()).
				Msg("fetched parameter cell")
			fmt.Println(result.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&flagColumn, "column", "", "Column name to extract")
	cmd.Flags().IntVar(&flagRow, "row", config.Int("PARAMCELL_ROW", 0), "Row index to extract, overriding $PARAMCELL_ROW")
	cmd.Flags().StringVar(&flagCSV, "csv", "", "CSV parameter file (first record is the header)")
	cmd.Flags().StringVar(&flagDB, "db", "", "SQLite database holding the parameter table")
	cmd.Flags().StringVar(&flagTable, "table", config.String("PARAMCELL_SQLITE_TABLE", "params"), "SQLite table name, overriding $PARAMCELL_SQLITE_TABLE")
	flags.register(cmd)
	return cmd
}
