package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ganot/portico/internal/domain/portfolio"
)

// RecordRepository implements portfolio.Repository for SQLite.
type RecordRepository struct {
	db *DB
}

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(db *DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// ListAll returns every row of the tracker table in insertion order.
// Failures wrap portfolio.ErrDataUnavailable so callers can treat every
// storage problem as the single data-unavailable condition.
func (r *RecordRepository) ListAll(ctx context.Context) ([]portfolio.Record, error) {
	query := `
		SELECT project_name, category, priority_level, project_phase,
		       business_impact, risk_level, resource_type, notes
		FROM idea_store
		ORDER BY rowid
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying records: %v", portfolio.ErrDataUnavailable, err)
	}
	defer rows.Close()

	var records []portfolio.Record
	for rows.Next() {
		var rec portfolio.Record
		var notes sql.NullString
		err := rows.Scan(
			&rec.ProjectName,
			&rec.Category,
			&rec.PriorityLevel,
			&rec.Phase,
			&rec.BusinessImpact,
			&rec.RiskLevel,
			&rec.ResourceType,
			&notes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning record: %v", portfolio.ErrDataUnavailable, err)
		}
		rec.Notes = notes.String
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating records: %v", portfolio.ErrDataUnavailable, err)
	}

	return records, nil
}
