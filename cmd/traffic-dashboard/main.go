package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/internal"
)

var configPath string

func main() {
	// .env is optional
	_ = godotenv.Load()

	internal.InitLogging()
	defer internal.SyncLogger()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "traffic-dashboard",
		Short:         "RATP annual station traffic dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("DASHBOARD_CONFIG"),
		"path to config.yml (default: $DASHBOARD_CONFIG, then ./config.yml)")

	root.AddCommand(newServeCmd(), newSummaryCmd(), newExportCmd())
	return root
}
