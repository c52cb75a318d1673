package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	trafficdash "github.com/theoremus-urban-solutions/ratp-traffic-dashboard"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/config"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/formatter"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/internal"
	"github.com/theoremus-urban-solutions/ratp-traffic-dashboard/views"
)

func loadConfig() (config.AppConfig, error) {
	if err := config.LoadAppConfig(configPath); err != nil {
		return config.AppConfig{}, err
	}
	return config.Config, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard API",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := internal.GetLogger()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			tables := trafficdash.NewTableCache(cfg, log)
			if err := tables.Warm(); err != nil {
				_, body := trafficdash.LoadErrorResponse(err)
				log.Errorw("cannot load data", "error", body.Error, "detail", body.Message)
				return fmt.Errorf("%s: %s", body.Error, body.Message)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if cfg.Data.Watch {
				if err := tables.Watch(ctx); err != nil {
					log.Warnw("file watching disabled", "error", err)
				}
				defer tables.Close()
			}

			srv := trafficdash.NewServer(cfg, tables, log)
			srv.Start()
			srv.HandleGracefulShutdown()
			return nil
		},
	}
}

func newSummaryCmd() *cobra.Command {
	var network string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the key figures of a network as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			tbl, err := trafficdash.NewTableCache(cfg, internal.GetLogger()).LoadRidership()
			if err != nil {
				return err
			}
			out, err := formatter.NewResponseBuilder().BuildIndentedJSON(trafficdash.BuildSummary(tbl, network))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().StringVar(&network, "network", "", "network label (default: first network)")
	return cmd
}

func newExportCmd() *cobra.Command {
	var network, arrondissement, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered station table as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := views.ParseArrondissementFilter(arrondissement)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			tbl, err := trafficdash.NewTableCache(cfg, internal.GetLogger()).LoadRidership()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				file, err := os.Create(out)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			return formatter.WriteStationsCSV(w, tbl, trafficdash.SelectStations(tbl, network, f))
		},
	}
	cmd.Flags().StringVar(&network, "network", "", "network label (default: all networks)")
	cmd.Flags().StringVar(&arrondissement, "arrondissement", views.OptionAll, "all, unspecified or an arrondissement code")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}
