package cron

import (
	"context"
	"log/slog"
	"time"
)

// CompensationResyncer recomputes compensation rows for trainings in
// active batches. Implemented by the training service.
type CompensationResyncer interface {
	ResyncCompensation(ctx context.Context) (int, error)
}

type CompensationJobs struct {
	resyncer CompensationResyncer
}

func NewCompensationJobs(resyncer CompensationResyncer) *CompensationJobs {
	return &CompensationJobs{resyncer: resyncer}
}

func (j *CompensationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("resync_compensation", 1*time.Hour, j.ResyncCompensation)
}

// ResyncCompensation re-derives hours and rates for every training in an
// active batch. Manual overrides are left untouched.
func (j *CompensationJobs) ResyncCompensation(ctx context.Context) error {
	count, err := j.resyncer.ResyncCompensation(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Info("Cron: Resynced compensation rows", "count", count)
	}
	return nil
}
