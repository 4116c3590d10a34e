package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/logging"
)

var (
	logger *zap.Logger
	cfg    config.Config

	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "storectl",
	Short: "Operate the storefront from the command line",
	Long: `storectl talks to the same Storefront API and session store as the web
server. Configuration comes from the environment and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if !verbose {
			logger = zap.NewNop()
			return nil
		}
		l, err := logging.New("development", "storectl")
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatJSON, "output format (json|yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")

	cartCmd.AddCommand(cartAddCmd)
	sessionsCmd.AddCommand(sessionsPurgeCmd)
	rootCmd.AddCommand(productsCmd, cartCmd, sessionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
