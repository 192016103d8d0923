package main

import (
	"github.com/spf13/cobra"

	"github.com/ganot/portico/internal/domain/portfolio"
	"github.com/ganot/portico/internal/sqlite"
)

// sampleRecords is a small demo portfolio used by the seed command.
var sampleRecords = []portfolio.Record{
	{ProjectName: "Billing rewrite", Category: "Finance", PriorityLevel: 4, Phase: "In Progress", BusinessImpact: 4, RiskLevel: 2, ResourceType: 1, Notes: "Replace the legacy invoicing pipeline"},
	{ProjectName: "CDN migration", Category: "Infrastructure", PriorityLevel: 3, Phase: "Planning", BusinessImpact: 3, RiskLevel: 3, ResourceType: 2, Notes: "Vendor evaluation in progress"},
	{ProjectName: "Mobile onboarding", Category: "Product", PriorityLevel: 3, Phase: "In Progress", BusinessImpact: 4, RiskLevel: 1, ResourceType: 3, Notes: ""},
	{ProjectName: "Data warehouse upgrade", Category: "Infrastructure", PriorityLevel: 2, Phase: "On Hold", BusinessImpact: 2, RiskLevel: 2, ResourceType: 2, Notes: "Waiting on budget approval"},
	{ProjectName: "SSO rollout", Category: "Security", PriorityLevel: 4, Phase: "Planning", BusinessImpact: 4, RiskLevel: 2, ResourceType: 1, Notes: ""},
	{ProjectName: "Quarterly report automation", Category: "Finance", PriorityLevel: 1, Phase: "Completed", BusinessImpact: 2, RiskLevel: 1, ResourceType: 1, Notes: "Shipped in Q2"},
	{ProjectName: "Design system refresh", Category: "Product", PriorityLevel: 2, Phase: "In Progress", BusinessImpact: 2, RiskLevel: 1, ResourceType: 3, Notes: ""},
	{ProjectName: "Incident response playbooks", Category: "Security", PriorityLevel: 3, Phase: "Completed", BusinessImpact: 3, RiskLevel: 1, ResourceType: 1, Notes: ""},
}

func newSeedCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the tracker table and insert demo projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			if err := ensureDBDir(cfg.DB.Path); err != nil {
				return err
			}

			db, err := sqlite.New(cfg.DB.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.EnsureSchema(); err != nil {
				return err
			}

			if count <= 0 || count > len(sampleRecords) {
				count = len(sampleRecords)
			}
			for _, rec := range sampleRecords[:count] {
				if err := db.InsertRecord(cmd.Context(), rec); err != nil {
					return err
				}
			}

			logger.Info("seeded tracker database", "path", cfg.DB.Path, "records", count)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "number of demo records to insert (default: all)")

	return cmd
}
