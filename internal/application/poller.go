package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luoyen/weibot/internal/domain"
	"github.com/luoyen/weibot/internal/ports"
)

const (
	defaultLookback = 5
	defaultPacing   = time.Second
)

type PollerConfig struct {
	// Lookback is the number of newest entries inspected per poll. Posts
	// beyond it are assumed already processed or too old to reply to.
	Lookback int
	// Pacing is the delay inserted between successive item inspections.
	Pacing time.Duration
}

func (c *PollerConfig) applyDefaults() {
	if c.Lookback <= 0 {
		c.Lookback = defaultLookback
	}
	if c.Pacing <= 0 {
		c.Pacing = defaultPacing
	}
}

// Poller detects new posts for an account relative to its persisted state.
type Poller struct {
	client   ports.FeedClient
	states   ports.StateRepository
	accounts ports.AccountRepository
	audit    ports.AuditLogger
	clock    ports.Clock
	cfg      PollerConfig
}

func NewPoller(client ports.FeedClient, states ports.StateRepository, accounts ports.AccountRepository, audit ports.AuditLogger, clock ports.Clock, cfg PollerConfig) *Poller {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	cfg.applyDefaults()

	return &Poller{
		client:   client,
		states:   states,
		accounts: accounts,
		audit:    audit,
		clock:    clock,
		cfg:      cfg,
	}
}

// Load returns the account's state, bootstrapping it on first encounter:
// every post currently on the feed is seeded as processed so monitoring
// never replies to content that predates it. A failed bootstrap fetch
// disables the account and returns an error for the caller to log.
func (p *Poller) Load(ctx context.Context, id domain.AccountID, nickname string) (domain.AccountState, error) {
	state, err := p.states.Get(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrStateNotFound) {
		return domain.AccountState{}, fmt.Errorf("load state for account %s: %w", id, err)
	}

	state.AccountID = id
	state.Nickname = nickname
	if !state.Empty() {
		return state, nil
	}

	return p.bootstrap(ctx, state)
}

func (p *Poller) bootstrap(ctx context.Context, state domain.AccountState) (domain.AccountState, error) {
	id := state.AccountID

	posts, err := p.client.RecentPosts(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMissingToken) {
			return domain.AccountState{}, err
		}
		if disableErr := p.accounts.Disable(ctx, id); disableErr != nil {
			return domain.AccountState{}, fmt.Errorf("disable account %s after failed bootstrap: %w", id, errors.Join(err, disableErr))
		}
		return domain.AccountState{}, fmt.Errorf("bootstrap account %s, disabled: %w", id, err)
	}

	for _, post := range posts {
		state.Mark(post.ID)
	}

	if err := p.states.Save(ctx, state); err != nil {
		return domain.AccountState{}, fmt.Errorf("commit bootstrap state for account %s: %w", id, err)
	}

	p.audit.Log(ports.AuditInfo, fmt.Sprintf("account %s (%s): bootstrapped %d posts, high-water mark %d", id, state.Nickname, len(state.Processed), state.MaxID))
	return state, nil
}

// FindNew reports the first unprocessed post inside the lookback window,
// or ok=false when nothing qualifies. Only one post is surfaced per call
// even if several are new. State is committed before the id is returned,
// so a crash between detection and reply never re-surfaces the same post.
func (p *Poller) FindNew(ctx context.Context, state *domain.AccountState) (int64, bool, error) {
	posts, err := p.client.RecentPosts(ctx, state.AccountID)
	if err != nil {
		return 0, false, fmt.Errorf("list recent posts for account %s: %w", state.AccountID, err)
	}
	if len(posts) > p.cfg.Lookback {
		posts = posts[:p.cfg.Lookback]
	}

	for i, post := range posts {
		if i > 0 {
			p.clock.Sleep(ctx, p.cfg.Pacing)
		}
		if state.Seen(post.ID) || post.ID <= state.MaxID {
			continue
		}

		state.Mark(post.ID)
		if err := p.states.Save(ctx, *state); err != nil {
			return 0, false, fmt.Errorf("commit state for account %s: %w", state.AccountID, err)
		}

		p.audit.Log(ports.AuditInfo, fmt.Sprintf("account %s (%s): new post %d, created %s", state.AccountID, state.Nickname, post.ID, post.CreatedAt))
		return post.ID, true, nil
	}

	return 0, false, nil
}
