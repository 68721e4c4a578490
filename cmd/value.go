package main

import (
	"fmt"

	paramcell "github.com/paramcell/ParamCell"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newValueCmd() *cobra.Command {
	flags := &coerceFlags{}
	var flagRaw string

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Coerce a literal value",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.build(cmd)
			if err != nil {
				return err
			}
			var raw any
			if cmd.Flags().Changed("raw") {
				raw = flagRaw
			}
			result := paramcell.Coerce(raw, opts)
			log.Debug().
				Str("target", string(result.Target())).
				Bool("missing", result.IsMissing()).
				Msg("coerced literal value")
			fmt.Println(result.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&flagRaw, "raw", "", "Literal value to coerce (omit for a missing input)")
	flags.register(cmd)
	return cmd
}
