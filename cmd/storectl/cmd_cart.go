package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	sessionrepo "storefront/internal/repository/session"
	cartsvc "storefront/internal/service/cart"
	"storefront/internal/storefront"
)

var (
	cartQuantity  int
	cartSessionID string
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Work with session carts",
}

// cartAddCmd adds a variant to the cart of a session, creating the cart when
// the session has none yet.
var cartAddCmd = &cobra.Command{
	Use:   "add VARIANT_ID",
	Short: "Add a product variant to a session's cart",
	Long: `Adds a line to the cart bound to --session, creating the cart on first use.

Without --session a new session id is generated and printed to stderr so it
can be reused. With the in-memory store the binding ends when the command exits.`,
	Args: cobra.ExactArgs(1),
	RunE: runCartAdd,
}

func init() {
	cartAddCmd.Flags().IntVarP(&cartQuantity, "quantity", "q", 1, "number of units to add")
	cartAddCmd.Flags().StringVarP(&cartSessionID, "session", "s", "", "session id owning the cart")
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	ctx := cmd.Context()

	client, err := storefront.New(cfg.Storefront, storefront.WithTimeout(cfg.StorefrontTimeout))
	if err != nil {
		return err
	}
	store, closeStore, err := sessionrepo.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	sid := cartSessionID
	if sid == "" {
		sid = uuid.NewString()
		fmt.Fprintf(cmd.ErrOrStderr(), "session: %s\n", sid)
	}

	cart, err := cartsvc.New(client, store, logger).AddLine(ctx, sid, args[0], cartQuantity)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), outputFormat, cart)
}
