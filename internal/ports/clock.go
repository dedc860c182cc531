package ports

import (
	"context"
	"time"
)

// Clock abstracts time for the engine so pacing delays, cycle sleeps, and
// cooldowns are testable without real waiting.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration)
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep waits for d or until ctx is cancelled, whichever comes first.
func (SystemClock) Sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
