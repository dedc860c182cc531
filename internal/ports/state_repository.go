package ports

import (
	"context"

	"github.com/luoyen/weibot/internal/domain"
)

// StateRepository persists per-account processed-post state, one record
// per account. Get returns domain.ErrStateNotFound for an account that has
// never been committed. Save rewrites the whole record; callers pass the
// complete state, not a delta.
type StateRepository interface {
	Get(ctx context.Context, id domain.AccountID) (domain.AccountState, error)
	Save(ctx context.Context, state domain.AccountState) error
}
