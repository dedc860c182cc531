package ports

import (
	"context"
	"time"
)

// ScheduleSource supplies the end-of-cycle sleep interval, re-read every
// cycle so configuration edits take effect without a restart.
type ScheduleSource interface {
	SleepInterval(ctx context.Context) (time.Duration, error)
}
