package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/JonMunkholm/inspections/internal/extract"
	"github.com/JonMunkholm/inspections/internal/pipeline"
	"github.com/spf13/cobra"
)

func newLoadCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Replace all stored data with a CSV export",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			rows, err := extract.ReadRows(f)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}

			pool, db, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			p := pipeline.New(pipeline.FromDB(db), pipeline.Config{
				MaxWaitTime: a.cfg.Load.MaxWaitTime,
				Timeout:     a.cfg.Load.Timeout,
			})
			result, err := p.Run(ctx, rows)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "CSV export to load (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
