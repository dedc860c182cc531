package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/luoyen/weibot/internal/domain"
	"github.com/luoyen/weibot/internal/ports/mocks"
)

type schedulerFixture struct {
	accounts  *mocks.MockAccountRepository
	schedule  *mocks.MockScheduleSource
	client    *mocks.MockFeedClient
	states    *mocks.MockStateRepository
	generator *mocks.MockReplyGenerator
	audit     *mocks.MockAuditLogger
	clock     *mocks.MockClock
	scheduler *Scheduler
}

func newSchedulerFixture(t *testing.T) schedulerFixture {
	t.Helper()

	f := schedulerFixture{
		accounts:  mocks.NewMockAccountRepository(t),
		schedule:  mocks.NewMockScheduleSource(t),
		client:    mocks.NewMockFeedClient(t),
		states:    mocks.NewMockStateRepository(t),
		generator: mocks.NewMockReplyGenerator(t),
		audit:     mocks.NewMockAuditLogger(t),
		clock:     mocks.NewMockClock(t),
	}

	// Scheduler tests assert control flow through the repositories and
	// the remote client; audit output is free-form.
	f.audit.EXPECT().Log(mock.Anything, mock.Anything).Return().Maybe()

	resolver := NewNameResolver(f.client, f.audit)
	poller := NewPoller(f.client, f.states, f.accounts, f.audit, f.clock, PollerConfig{})
	pipeline := NewPipeline(f.client, f.generator, f.audit)
	f.scheduler = NewScheduler(f.accounts, f.schedule, resolver, poller, pipeline, f.audit, f.clock, SchedulerOptions{
		Cooldown: Backoff{Min: 7 * time.Second, Max: time.Minute},
	})

	return f
}

func TestCycleDisablesUnresolvableAccount(t *testing.T) {
	f := newSchedulerFixture(t)

	f.accounts.EXPECT().List(mockAnyContext()).Return([]domain.Account{{ID: "42", Enabled: true}}, nil).Once()
	f.client.EXPECT().ProfileName(mockAnyContext(), domain.AccountID("42")).Return("", errors.New("no such user")).Once()
	f.accounts.EXPECT().Disable(mockAnyContext(), domain.AccountID("42")).Return(nil).Once()

	// No state load, poll, or reply happens for the disabled account.
	require.NoError(t, f.scheduler.RunCycle(context.Background(), "cycle-1"))
}

func TestCycleSkipsDisabledAccounts(t *testing.T) {
	f := newSchedulerFixture(t)

	f.accounts.EXPECT().List(mockAnyContext()).Return([]domain.Account{{ID: "42", Enabled: false}}, nil).Once()

	require.NoError(t, f.scheduler.RunCycle(context.Background(), "cycle-1"))
}

func TestCycleIsolatesPerAccountFailures(t *testing.T) {
	f := newSchedulerFixture(t)

	f.accounts.EXPECT().List(mockAnyContext()).Return([]domain.Account{
		{ID: "11", Enabled: true},
		{ID: "22", Enabled: true},
	}, nil).Once()

	// Account 11 fails at the polling stage.
	f.client.EXPECT().ProfileName(mockAnyContext(), domain.AccountID("11")).Return("甲", nil).Once()
	f.states.EXPECT().Get(mockAnyContext(), domain.AccountID("11")).Return(domain.AccountState{AccountID: "11", Processed: []int64{100}, MaxID: 100}, nil).Once()
	f.client.EXPECT().RecentPosts(mockAnyContext(), domain.AccountID("11")).Return(nil, errors.New("gateway timeout")).Once()

	// Account 22 is still processed end to end.
	f.client.EXPECT().ProfileName(mockAnyContext(), domain.AccountID("22")).Return("乙", nil).Once()
	f.states.EXPECT().Get(mockAnyContext(), domain.AccountID("22")).Return(domain.AccountState{AccountID: "22", Processed: []int64{200}, MaxID: 200}, nil).Once()
	f.client.EXPECT().RecentPosts(mockAnyContext(), domain.AccountID("22")).Return([]domain.Post{{ID: 201}}, nil).Once()
	f.states.EXPECT().Save(mockAnyContext(), mock.MatchedBy(func(s domain.AccountState) bool {
		return s.AccountID == "22" && s.MaxID == 201
	})).Return(nil).Once()
	f.client.EXPECT().PostText(mockAnyContext(), int64(201)).Return("发布内容", nil).Once()
	f.generator.EXPECT().Generate(mockAnyContext(), "发布内容").Return("回复", nil).Once()
	f.client.EXPECT().CreateComment(mockAnyContext(), int64(201), "回复").Return(domain.ReplyOutcome{Success: true}, nil).Once()

	require.NoError(t, f.scheduler.RunCycle(context.Background(), "cycle-1"))
}

func TestCycleAbortsOnMissingCredentialToken(t *testing.T) {
	f := newSchedulerFixture(t)

	f.accounts.EXPECT().List(mockAnyContext()).Return([]domain.Account{
		{ID: "11", Enabled: true},
		{ID: "22", Enabled: true},
	}, nil).Once()

	f.client.EXPECT().ProfileName(mockAnyContext(), domain.AccountID("11")).Return("", domain.ErrMissingToken).Once()

	// The shared credential is dead: account 22 is never touched.
	err := f.scheduler.RunCycle(context.Background(), "cycle-1")
	require.ErrorIs(t, err, domain.ErrMissingToken)
}

func TestCycleLeavesAccountEnabledOnTransportFailure(t *testing.T) {
	f := newSchedulerFixture(t)

	f.accounts.EXPECT().List(mockAnyContext()).Return([]domain.Account{{ID: "42", Enabled: true}}, nil).Once()
	f.client.EXPECT().ProfileName(mockAnyContext(), domain.AccountID("42")).Return("观察员", nil).Once()
	f.states.EXPECT().Get(mockAnyContext(), domain.AccountID("42")).Return(domain.AccountState{AccountID: "42", Processed: []int64{100}, MaxID: 100}, nil).Once()
	f.client.EXPECT().RecentPosts(mockAnyContext(), domain.AccountID("42")).Return(nil, errors.New("connection reset")).Once()

	// No Disable expectation: flipping the flag here would fail the test.
	require.NoError(t, f.scheduler.RunCycle(context.Background(), "cycle-1"))
}

func TestRunStopsOnContextCancellation(t *testing.T) {
	f := newSchedulerFixture(t)

	ctx, cancel := context.WithCancel(context.Background())

	f.accounts.EXPECT().List(mockAnyContext()).Return(nil, nil).Once()
	f.schedule.EXPECT().SleepInterval(mockAnyContext()).Return(30*time.Second, nil).Once()
	f.clock.EXPECT().Sleep(mockAnyContext(), 30*time.Second).Run(func(context.Context, time.Duration) {
		cancel()
	}).Return().Once()

	err := f.scheduler.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunCoolsDownAfterFailedCycle(t *testing.T) {
	f := newSchedulerFixture(t)

	ctx, cancel := context.WithCancel(context.Background())

	f.accounts.EXPECT().List(mockAnyContext()).Return(nil, errors.New("config unreadable")).Once()
	f.clock.EXPECT().Sleep(mockAnyContext(), 7*time.Second).Run(func(context.Context, time.Duration) {
		cancel()
	}).Return().Once()

	err := f.scheduler.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
