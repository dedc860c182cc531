package application

import "time"

const (
	defaultCooldownMin = 10 * time.Second
	defaultCooldownMax = 5 * time.Minute
)

// Backoff is the cooldown policy applied between failed cycles: start at
// Min, double per consecutive failure, cap at Max, reset after a clean
// cycle. Deterministic so it can be tested without real time.
type Backoff struct {
	Min time.Duration
	Max time.Duration

	current time.Duration
}

func (b *Backoff) Next() time.Duration {
	if b.Min <= 0 {
		b.Min = defaultCooldownMin
	}
	if b.Max < b.Min {
		b.Max = defaultCooldownMax
	}
	if b.current <= 0 {
		b.current = b.Min
	}

	wait := b.current
	if next := b.current * 2; next <= b.Max {
		b.current = next
	} else {
		b.current = b.Max
	}

	return wait
}

func (b *Backoff) Reset() {
	b.current = 0
}
