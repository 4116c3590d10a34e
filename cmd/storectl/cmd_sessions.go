package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"storefront/internal/db"
	sessionrepo "storefront/internal/repository/session"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Maintain the session store",
}

// sessionsPurgeCmd deletes expired cart bindings from the postgres store.
// Redis and the in-memory store expire entries on their own.
var sessionsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired session rows from postgres",
	Args:  cobra.NoArgs,
	RunE:  runSessionsPurge,
}

func runSessionsPurge(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer pool.Close()

	n, err := sessionrepo.PurgeExpired(ctx, pool)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "purged %d expired sessions\n", n)
	return nil
}
