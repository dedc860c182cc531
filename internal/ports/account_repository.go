package ports

import (
	"context"

	"github.com/luoyen/weibot/internal/domain"
)

type AccountRepository interface {
	List(ctx context.Context) ([]domain.Account, error)
	Disable(ctx context.Context, id domain.AccountID) error
}
