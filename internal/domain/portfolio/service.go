package portfolio

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service loads portfolio snapshots. Load failures never propagate: the
// caller always receives a snapshot, empty and flagged Unavailable when the
// data source cannot be reached, so that downstream summarization and
// filtering operate safely over zero records.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new portfolio service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Load fetches every record and decorates it with its resource type label.
// Codes outside the known set leave the label empty.
func (s *Service) Load(ctx context.Context) Snapshot {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Warn("loading snapshot", "error", fmt.Errorf("%w: %v", ErrDataUnavailable, err))
		return Snapshot{LoadedAt: s.now(), Unavailable: true}
	}

	for i := range records {
		if label, ok := ResourceTypeLabel(records[i].ResourceType); ok {
			records[i].ResourceTypeLabel = label
		}
	}

	return Snapshot{Records: records, LoadedAt: s.now()}
}
