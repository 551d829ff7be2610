package main

import (
	"fmt"

	"github.com/JonMunkholm/inspections/internal/store"
	"github.com/spf13/cobra"
)

func newResetCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every stored row and restart id sequences",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset deletes all data; pass --yes to confirm")
			}

			ctx := cmd.Context()
			pool, db, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.WithinTx(ctx, func(q *store.Queries) error {
				return q.Reset(ctx)
			}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "all tables reset")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion of all data")
	return cmd
}
