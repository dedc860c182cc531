package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/luoyen/weibot/internal/domain"
	"github.com/luoyen/weibot/internal/ports"
)

// NameResolver maps account ids to display names via one remote profile
// lookup per account. Successful resolutions are cached for the life of
// the process; a changed display name is only picked up on restart.
type NameResolver struct {
	client ports.FeedClient
	audit  ports.AuditLogger
	cache  map[domain.AccountID]string
}

func NewNameResolver(client ports.FeedClient, audit ports.AuditLogger) *NameResolver {
	return &NameResolver{
		client: client,
		audit:  audit,
		cache:  make(map[domain.AccountID]string),
	}
}

// Resolve returns the account's display name, falling back to the raw id
// when the lookup fails or comes back empty. Callers treat the raw-id echo
// as the broken-account sentinel. The only error surfaced is a missing
// credential token, which no amount of per-account retrying can fix.
func (r *NameResolver) Resolve(ctx context.Context, id domain.AccountID) (string, error) {
	if name, ok := r.cache[id]; ok {
		return name, nil
	}

	name, err := r.client.ProfileName(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMissingToken) {
			return "", err
		}
		r.audit.Log(ports.AuditWarning, fmt.Sprintf("resolve account %s: %v", id, err))
		return string(id), nil
	}
	if name == "" {
		return string(id), nil
	}

	r.cache[id] = name
	return name, nil
}
