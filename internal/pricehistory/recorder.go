package pricehistory

import (
	"context"
	"log/slog"

	"github.com/gamevault/backend/internal/repository"
)

// SnapshotJob records the current catalog prices into the history table.
// It implements worker.Job and is meant to run on a fixed schedule.
type SnapshotJob struct {
	repo repository.PriceHistory
}

// NewSnapshotJob creates a price snapshot job
func NewSnapshotJob(repo repository.PriceHistory) *SnapshotJob {
	return &SnapshotJob{repo: repo}
}

func (j *SnapshotJob) Process(ctx context.Context) error {
	recorded, err := j.repo.RecordSnapshot(ctx)
	if err != nil {
		return err
	}
	slog.Info("Price snapshot recorded", "games", recorded)
	return nil
}
