package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ganot/portico/internal/domain/portfolio"
	"github.com/ganot/portico/internal/report"
)

func newReportCmd() *cobra.Command {
	var (
		categories  []string
		phases      []string
		minPriority int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the portfolio summary and project table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			snap := app.service.Load(cmd.Context())
			filtered := portfolio.Filter(snap.Records, portfolio.FilterOptions{
				Categories:  categories,
				Phases:      phases,
				MinPriority: minPriority,
			})

			report.Write(os.Stdout, portfolio.Summarize(snap), filtered, snap.LoadedAt)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&categories, "category", nil, "restrict to these categories")
	cmd.Flags().StringSliceVar(&phases, "phase", nil, "restrict to these phases")
	cmd.Flags().IntVar(&minPriority, "min-priority", 1, "minimum priority level (1-4)")

	return cmd
}
