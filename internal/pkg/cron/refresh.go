package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/STS-Engineer/back-pointeuse/internal/domain/attendance"
)

// RefreshJobs owns the periodic snapshot recompute. One job, one interval;
// the scheduler also fires it once at startup so the service never serves the
// seed snapshot for a full interval.
type RefreshJobs struct {
	service attendance.AttendanceService
}

func NewRefreshJobs(service attendance.AttendanceService) *RefreshJobs {
	return &RefreshJobs{service: service}
}

func (j *RefreshJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("refresh_attendance_snapshot", interval, j.RefreshSnapshot)
}

func (j *RefreshJobs) RefreshSnapshot(ctx context.Context) error {
	if _, err := j.service.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to refresh attendance snapshot: %w", err)
	}
	return nil
}
