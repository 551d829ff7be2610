// Command etl loads NYC restaurant inspection exports from the command line
// and manages the database schema.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/inspections/internal/config"
	"github.com/JonMunkholm/inspections/internal/logging"
	"github.com/JonMunkholm/inspections/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "etl",
		Short:         "Load restaurant inspection exports into PostgreSQL",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; the environment may already be set.
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
			return nil
		},
	}

	cmd.AddCommand(
		newLoadCmd(a),
		newResetCmd(a),
		newStatsCmd(a),
		newMigrateCmd(a),
	)
	return cmd
}

// connect opens the database for one command. The caller closes the pool.
func (a *app) connect(ctx context.Context) (*pgxpool.Pool, *store.DB, error) {
	pool, err := store.Connect(ctx, a.cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("connected to database")
	return pool, store.NewDB(pool), nil
}
