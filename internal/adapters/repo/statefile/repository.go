// Package statefile persists per-account processed-post state as one JSON
// file per account.
package statefile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/luoyen/weibot/internal/domain"
	"github.com/luoyen/weibot/internal/ports"
)

const (
	stateFileMode   = 0o600
	stateDirMode    = 0o700
	tempFilePattern = ".state-*.json.tmp"
)

type Repository struct {
	dir string
	mu  *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	dirLockMap     = map[string]*sync.RWMutex{}
)

var _ ports.StateRepository = (*Repository)(nil)

func NewRepository(dir string) (*Repository, error) {
	if dir == "" {
		return nil, errors.New("state directory is empty")
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve state directory: %w", err)
	}
	absDir = filepath.Clean(absDir)

	return &Repository{dir: absDir, mu: lockForDir(absDir)}, nil
}

func (r *Repository) Get(ctx context.Context, id domain.AccountID) (domain.AccountState, error) {
	if err := ctx.Err(); err != nil {
		return domain.AccountState{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.path(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.AccountState{}, domain.ErrStateNotFound
		}
		return domain.AccountState{}, fmt.Errorf("read state file: %w", err)
	}
	if len(data) == 0 {
		return domain.AccountState{}, domain.ErrStateNotFound
	}

	var file fileSchema
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.AccountState{}, fmt.Errorf("decode state file: %w", err)
	}

	return fromSchema(id, file), nil
}

func (r *Repository) Save(ctx context.Context, state domain.AccountState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.dir, stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	data, err := json.MarshalIndent(toSchema(state), "", "  ")
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}

	return r.writeAtomic(r.path(state.AccountID), data)
}

func (r *Repository) path(id domain.AccountID) string {
	return filepath.Join(r.dir, "weibo_mid_"+string(id)+".json")
}

func (r *Repository) writeAtomic(path string, data []byte) error {
	tempFile, err := os.CreateTemp(r.dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	cleanup = false
	return nil
}

func lockForDir(dir string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := dirLockMap[dir]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	dirLockMap[dir] = mu
	return mu
}
