package ports

import (
	"context"

	"github.com/luoyen/weibot/internal/domain"
)

// FeedClient is the remote platform surface the engine consumes. RecentPosts
// returns the account's posts newest first, as the platform orders them.
type FeedClient interface {
	ProfileName(ctx context.Context, id domain.AccountID) (string, error)
	RecentPosts(ctx context.Context, id domain.AccountID) ([]domain.Post, error)
	PostText(ctx context.Context, mid int64) (string, error)
	CreateComment(ctx context.Context, mid int64, text string) (domain.ReplyOutcome, error)
}
