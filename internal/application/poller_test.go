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
	"github.com/luoyen/weibot/internal/ports"
	"github.com/luoyen/weibot/internal/ports/mocks"
)

type pollerFixture struct {
	client   *mocks.MockFeedClient
	states   *mocks.MockStateRepository
	accounts *mocks.MockAccountRepository
	audit    *mocks.MockAuditLogger
	clock    *mocks.MockClock
	poller   *Poller
}

func newPollerFixture(t *testing.T) pollerFixture {
	t.Helper()

	f := pollerFixture{
		client:   mocks.NewMockFeedClient(t),
		states:   mocks.NewMockStateRepository(t),
		accounts: mocks.NewMockAccountRepository(t),
		audit:    mocks.NewMockAuditLogger(t),
		clock:    mocks.NewMockClock(t),
	}
	f.poller = NewPoller(f.client, f.states, f.accounts, f.audit, f.clock, PollerConfig{})
	return f
}

func posts(mids ...int64) []domain.Post {
	list := make([]domain.Post, 0, len(mids))
	for _, mid := range mids {
		list = append(list, domain.Post{ID: mid, CreatedAt: "Mon Jan 01 12:00:00 +0800 2024"})
	}
	return list
}

func TestFindNewDetectsNewestQualifyingPost(t *testing.T) {
	f := newPollerFixture(t)

	state := domain.AccountState{
		AccountID: "42",
		Nickname:  "观察员",
		Processed: []int64{100, 101},
		MaxID:     101,
	}

	f.client.EXPECT().RecentPosts(mockAnyContext(), domain.AccountID("42")).Return(posts(103, 102, 101, 99, 98), nil).Once()
	f.states.EXPECT().Save(mockAnyContext(), mock.MatchedBy(func(s domain.AccountState) bool {
		return s.MaxID == 103 && s.Seen(103)
	})).Return(nil).Once()
	f.audit.EXPECT().Log(ports.AuditInfo, mock.Anything).Return().Once()

	mid, found, err := f.poller.FindNew(context.Background(), &state)
	require.NoError(t, err)
	require.True(t, found)

	// 103 is surfaced and 102 is left for a later cycle.
	assert.EqualValues(t, 103, mid)
	assert.EqualValues(t, 103, state.MaxID)
	assert.False(t, state.Seen(102))
}

func TestFindNewReturnsNothingWhenWindowIsStale(t *testing.T) {
	f := newPollerFixture(t)

	state := domain.AccountState{
		AccountID: "42",
		Processed: []int64{98, 99, 100, 101, 102, 103},
		MaxID:     103,
	}

	f.client.EXPECT().RecentPosts(mockAnyContext(), domain.AccountID("42")).Return(posts(103, 102, 101, 99, 98), nil).Once()
	f.clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return().Times(4)

	_, found, err := f.poller.FindNew(context.Background(), &state)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindNewIgnoresPostsBeyondLookbackWindow(t *testing.T) {
	f := newPollerFixture(t)

	state := domain.AccountState{
		AccountID: "42",
		Processed: []int64{103, 104, 105, 106, 107},
		MaxID:     107,
	}

	// Sixth entry 200 would qualify but sits outside the window.
	f.client.EXPECT().RecentPosts(mockAnyContext(), domain.AccountID("42")).Return(posts(107, 106, 105, 104, 103, 200), nil).Once()
	f.clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return().Times(4)

	_, found, err := f.poller.FindNew(context.Background(), &state)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindNewSkipsOlderUnseenPosts(t *testing.T) {
	f := newPollerFixture(t)

	// 99 was never processed but sits below the high-water mark.
	state := domain.AccountState{
		AccountID: "42",
		Processed: []int64{100, 101},
		MaxID:     101,
	}

	f.client.EXPECT().RecentPosts(mockAnyContext(), domain.AccountID("42")).Return(posts(101, 100, 99), nil).Once()
	f.clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return().Times(2)

	_, found, err := f.poller.FindNew(context.Background(), &state)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindNewHighWaterMarkNeverDecreases(t *testing.T) {
	f := newPollerFixture(t)

	state := domain.AccountState{AccountID: "42", Processed: []int64{110}, MaxID: 110}

	f.client.EXPECT().RecentPosts(mockAnyContext(), domain.AccountID("42")).Return(posts(110, 109, 108), nil).Times(3)
	f.clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return().Times(6)

	for range 3 {
		_, found, err := f.poller.FindNew(context.Background(), &state)
		require.NoError(t, err)
		assert.False(t, found)
		assert.EqualValues(t, 110, state.MaxID)
	}
}

func TestFindNewPropagatesListFailure(t *testing.T) {
	f := newPollerFixture(t)

	state := domain.AccountState{AccountID: "42", Processed: []int64{100}, MaxID: 100}

	f.client.EXPECT().RecentPosts(mockAnyContext(), domain.AccountID("42")).Return(nil, errors.New("gateway timeout")).Once()

	_, _, err := f.poller.FindNew(context.Background(), &state)
	require.ErrorContains(t, err, "gateway timeout")
}

func TestLoadBootstrapsUnknownAccount(t *testing.T) {
	f := newPollerFixture(t)

	f.states.EXPECT().Get(mockAnyContext(), domain.AccountID("42")).Return(domain.AccountState{}, domain.ErrStateNotFound).Once()
	f.client.EXPECT().RecentPosts(mockAnyContext(), domain.AccountID("42")).Return(posts(103, 102, 101), nil).Once()
	f.states.EXPECT().Save(mockAnyContext(), mock.MatchedBy(func(s domain.AccountState) bool {
		return s.AccountID == "42" && s.Nickname == "观察员" && len(s.Processed) == 3 && s.MaxID == 103
	})).Return(nil).Once()
	f.audit.EXPECT().Log(ports.AuditInfo, mock.Anything).Return().Once()

	state, err := f.poller.Load(context.Background(), "42", "观察员")
	require.NoError(t, err)

	assert.EqualValues(t, 103, state.MaxID)
	assert.True(t, state.Seen(101))
}

func TestBootstrapGeneratesNoReplies(t *testing.T) {
	f := newPollerFixture(t)

	f.states.EXPECT().Get(mockAnyContext(), domain.AccountID("42")).Return(domain.AccountState{}, domain.ErrStateNotFound).Once()
	f.client.EXPECT().RecentPosts(mockAnyContext(), domain.AccountID("42")).Return(posts(103, 102, 101), nil).Twice()
	f.states.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil).Once()
	f.audit.EXPECT().Log(ports.AuditInfo, mock.Anything).Return().Once()
	f.clock.EXPECT().Sleep(mockAnyContext(), time.Second).Return().Times(2)

	state, err := f.poller.Load(context.Background(), "42", "观察员")
	require.NoError(t, err)

	// The same cycle's poll finds nothing: every bootstrapped post is seeded.
	_, found, err := f.poller.FindNew(context.Background(), &state)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoadDisablesAccountWhenBootstrapFails(t *testing.T) {
	f := newPollerFixture(t)

	f.states.EXPECT().Get(mockAnyContext(), domain.AccountID("42")).Return(domain.AccountState{}, domain.ErrStateNotFound).Once()
	f.client.EXPECT().RecentPosts(mockAnyContext(), domain.AccountID("42")).Return(nil, errors.New("not found")).Once()
	f.accounts.EXPECT().Disable(mockAnyContext(), domain.AccountID("42")).Return(nil).Once()

	_, err := f.poller.Load(context.Background(), "42", "观察员")
	require.ErrorContains(t, err, "bootstrap")
}

func TestLoadPropagatesMissingTokenWithoutDisabling(t *testing.T) {
	f := newPollerFixture(t)

	f.states.EXPECT().Get(mockAnyContext(), domain.AccountID("42")).Return(domain.AccountState{}, domain.ErrStateNotFound).Once()
	f.client.EXPECT().RecentPosts(mockAnyContext(), domain.AccountID("42")).Return(nil, domain.ErrMissingToken).Once()

	_, err := f.poller.Load(context.Background(), "42", "观察员")
	require.ErrorIs(t, err, domain.ErrMissingToken)
}

func TestLoadReturnsExistingState(t *testing.T) {
	f := newPollerFixture(t)

	stored := domain.AccountState{AccountID: "42", Processed: []int64{100, 101}, MaxID: 101}
	f.states.EXPECT().Get(mockAnyContext(), domain.AccountID("42")).Return(stored, nil).Once()

	state, err := f.poller.Load(context.Background(), "42", "观察员")
	require.NoError(t, err)

	assert.Equal(t, "观察员", state.Nickname)
	assert.EqualValues(t, 101, state.MaxID)
}
