package sqlite

import (
	"context"
	"fmt"

	"github.com/ganot/portico/internal/domain/portfolio"
)

// The tracker table is normally created and populated by the external
// project tracker. EnsureSchema exists for the seed command and tests.
const schema = `
CREATE TABLE IF NOT EXISTS idea_store (
    project_name TEXT NOT NULL,
    category TEXT NOT NULL,
    priority_level INTEGER NOT NULL,
    project_phase TEXT NOT NULL,
    business_impact INTEGER NOT NULL,
    risk_level INTEGER NOT NULL,
    resource_type INTEGER NOT NULL,
    notes TEXT
);
`

// EnsureSchema creates the tracker table when it does not exist yet.
func (db *DB) EnsureSchema() error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// InsertRecord appends one record to the tracker table. Only the seed
// command and tests write; the serving path is read-only.
func (db *DB) InsertRecord(ctx context.Context, rec portfolio.Record) error {
	query := `
		INSERT INTO idea_store (project_name, category, priority_level, project_phase,
		                        business_impact, risk_level, resource_type, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(ctx, query,
		rec.ProjectName,
		rec.Category,
		rec.PriorityLevel,
		rec.Phase,
		rec.BusinessImpact,
		rec.RiskLevel,
		rec.ResourceType,
		rec.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	return nil
}
