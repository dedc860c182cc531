package ports

import (
	"context"

	"github.com/luoyen/weibot/internal/domain"
)

// CredentialSource loads the shared session credentials. Loaded once per
// request so an operator can rotate the cookie without a restart.
type CredentialSource interface {
	Load(ctx context.Context) (domain.CredentialBundle, error)
}
