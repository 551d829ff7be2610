package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print row counts per table",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, db, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			counts, err := db.Counts(ctx)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(counts)
		},
	}
}
