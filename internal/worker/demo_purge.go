package worker

import (
	"context"

	"github.com/osse101/ReelCasino_Go/internal/logger"
)

// DemoPurger removes expired demo accounts
type DemoPurger interface {
	PurgeExpiredDemos(ctx context.Context) (int64, error)
}

// DemoPurgeJob deletes demo accounts past their TTL on every run
type DemoPurgeJob struct {
	purger DemoPurger
}

// NewDemoPurgeJob creates the scheduled demo purge job
func NewDemoPurgeJob(purger DemoPurger) *DemoPurgeJob {
	return &DemoPurgeJob{purger: purger}
}

func (j *DemoPurgeJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgDemoPurgeStarting)

	removed, err := j.purger.PurgeExpiredDemos(ctx)
	if err != nil {
		return err
	}

	log.Debug(LogMsgDemoPurgeCompleted, "removed", removed)
	return nil
}
