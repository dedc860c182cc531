package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/luoyen/weibot/internal/domain"
	"github.com/luoyen/weibot/internal/ports"
	"github.com/luoyen/weibot/internal/ports/mocks"
)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func TestResolverCachesSuccessfulLookups(t *testing.T) {
	client := mocks.NewMockFeedClient(t)
	audit := mocks.NewMockAuditLogger(t)
	resolver := NewNameResolver(client, audit)

	client.EXPECT().ProfileName(mockAnyContext(), domain.AccountID("42")).Return("铁粉观察员", nil).Once()

	name, err := resolver.Resolve(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "铁粉观察员", name)

	// Second resolve hits the cache; the mock would fail on a second call.
	name, err = resolver.Resolve(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "铁粉观察员", name)
}

func TestResolverFallsBackToIDOnLookupFailure(t *testing.T) {
	client := mocks.NewMockFeedClient(t)
	audit := mocks.NewMockAuditLogger(t)
	resolver := NewNameResolver(client, audit)

	client.EXPECT().ProfileName(mockAnyContext(), domain.AccountID("42")).Return("", errors.New("connection reset")).Once()
	audit.EXPECT().Log(ports.AuditWarning, mock.Anything).Return().Once()

	name, err := resolver.Resolve(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", name)
}

func TestResolverFallsBackToIDOnEmptyName(t *testing.T) {
	client := mocks.NewMockFeedClient(t)
	audit := mocks.NewMockAuditLogger(t)
	resolver := NewNameResolver(client, audit)

	client.EXPECT().ProfileName(mockAnyContext(), domain.AccountID("42")).Return("", nil).Once()

	name, err := resolver.Resolve(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", name)
}

func TestResolverDoesNotCacheFailures(t *testing.T) {
	client := mocks.NewMockFeedClient(t)
	audit := mocks.NewMockAuditLogger(t)
	resolver := NewNameResolver(client, audit)

	client.EXPECT().ProfileName(mockAnyContext(), domain.AccountID("42")).Return("", errors.New("timeout")).Once()
	client.EXPECT().ProfileName(mockAnyContext(), domain.AccountID("42")).Return("观察员", nil).Once()
	audit.EXPECT().Log(ports.AuditWarning, mock.Anything).Return().Once()

	name, err := resolver.Resolve(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", name)

	name, err = resolver.Resolve(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "观察员", name)
}

func TestResolverPropagatesMissingToken(t *testing.T) {
	client := mocks.NewMockFeedClient(t)
	audit := mocks.NewMockAuditLogger(t)
	resolver := NewNameResolver(client, audit)

	client.EXPECT().ProfileName(mockAnyContext(), domain.AccountID("42")).Return("", domain.ErrMissingToken).Once()

	_, err := resolver.Resolve(context.Background(), "42")
	require.ErrorIs(t, err, domain.ErrMissingToken)
}
