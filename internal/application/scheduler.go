package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/luoyen/weibot/internal/domain"
	"github.com/luoyen/weibot/internal/ports"
)

const defaultCycleInterval = 60 * time.Second

type SchedulerOptions struct {
	// DefaultInterval is the end-of-cycle sleep used when the configured
	// interval is unavailable or nonsense.
	DefaultInterval time.Duration
	// Cooldown bounds the backoff between failed cycles.
	Cooldown Backoff
}

// Scheduler drives the engine: one pass over all enabled accounts per
// cycle, a sleep, then again, indefinitely. One account's failure never
// aborts the cycle for the rest, and a failed cycle never kills the loop.
type Scheduler struct {
	accounts ports.AccountRepository
	schedule ports.ScheduleSource
	resolver *NameResolver
	poller   *Poller
	pipeline *Pipeline
	audit    ports.AuditLogger
	clock    ports.Clock

	defaultInterval time.Duration
	cooldown        Backoff
}

func NewScheduler(accounts ports.AccountRepository, schedule ports.ScheduleSource, resolver *NameResolver, poller *Poller, pipeline *Pipeline, audit ports.AuditLogger, clock ports.Clock, opts SchedulerOptions) *Scheduler {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if opts.DefaultInterval <= 0 {
		opts.DefaultInterval = defaultCycleInterval
	}

	return &Scheduler{
		accounts:        accounts,
		schedule:        schedule,
		resolver:        resolver,
		poller:          poller,
		pipeline:        pipeline,
		audit:           audit,
		clock:           clock,
		defaultInterval: opts.DefaultInterval,
		cooldown:        opts.Cooldown,
	}
}

// Run loops until ctx is cancelled. A cycle that errors out is logged and
// followed by a cooldown instead of the regular sleep; the loop itself
// never dies from a bad cycle.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cycleID := uuid.NewString()
		if err := s.RunCycle(ctx, cycleID); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			wait := s.cooldown.Next()
			s.audit.Log(ports.AuditError, fmt.Sprintf("cycle %s failed: %v, cooling down %s", cycleID, err, wait))
			s.clock.Sleep(ctx, wait)
			continue
		}

		s.cooldown.Reset()
		s.clock.Sleep(ctx, s.interval(ctx))
	}
}

// RunCycle processes every enabled account once. Per-account failures are
// logged and skipped; a missing credential token aborts the whole cycle
// since the cookie is shared by every account.
func (s *Scheduler) RunCycle(ctx context.Context, cycleID string) error {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	for _, account := range accounts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !account.Enabled {
			continue
		}

		if err := s.processAccount(ctx, account); err != nil {
			if errors.Is(err, domain.ErrMissingToken) {
				return fmt.Errorf("account %s: %w", account.ID, err)
			}
			s.audit.Log(ports.AuditError, fmt.Sprintf("cycle %s: account %s: %v", cycleID, account.ID, err))
		}
	}

	return nil
}

func (s *Scheduler) processAccount(ctx context.Context, account domain.Account) error {
	nickname, err := s.resolver.Resolve(ctx, account.ID)
	if err != nil {
		return err
	}

	if nickname == string(account.ID) {
		s.audit.Log(ports.AuditWarning, fmt.Sprintf("account %s: display name unresolvable, disabling", account.ID))
		if err := s.accounts.Disable(ctx, account.ID); err != nil {
			return fmt.Errorf("disable account %s: %w", account.ID, err)
		}
		return nil
	}

	state, err := s.poller.Load(ctx, account.ID, nickname)
	if err != nil {
		return err
	}

	mid, found, err := s.poller.FindNew(ctx, &state)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	s.pipeline.Process(ctx, account.ID, nickname, mid)
	return nil
}

func (s *Scheduler) interval(ctx context.Context) time.Duration {
	d, err := s.schedule.SleepInterval(ctx)
	if err != nil {
		s.audit.Log(ports.AuditWarning, fmt.Sprintf("read sleep interval: %v, using default %s", err, s.defaultInterval))
		return s.defaultInterval
	}
	if d <= 0 {
		return s.defaultInterval
	}
	return d
}
