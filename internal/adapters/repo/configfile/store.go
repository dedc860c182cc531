// Package configfile serves the operator-owned config.json: tracked
// accounts, the generation prompt, and the cycle sleep interval.
package configfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/luoyen/weibot/internal/domain"
	"github.com/luoyen/weibot/internal/ports"
)

const (
	configFileMode  = 0o600
	tempFilePattern = ".config-*.json.tmp"

	enabledFlag  = "1"
	disabledFlag = "0"
)

// fileSchema matches config.json:
// {"uid": {"<id>": "1"|"0"}, "prompt": ..., "sleep_time": seconds}
type fileSchema struct {
	UID       map[string]string `json:"uid"`
	Prompt    string            `json:"prompt"`
	SleepTime int               `json:"sleep_time"`
}

// Store keeps a parsed snapshot of the config file, refreshed by an
// fsnotify watcher so an edit through the external configuration editor
// is visible to the next cycle without re-parsing every read.
type Store struct {
	path    string
	logger  *slog.Logger
	watcher *fsnotify.Watcher

	mu     sync.RWMutex
	cached fileSchema
}

var (
	_ ports.AccountRepository = (*Store)(nil)
	_ ports.ScheduleSource    = (*Store)(nil)
)

func NewStore(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	s := &Store{path: filepath.Clean(absPath), logger: logger}
	if err := s.reload(); err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors and atomic writers
	// replace the inode.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch config directory: %w", err)
	}
	s.watcher = watcher
	go s.watch()

	return s, nil
}

func (s *Store) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}

func (s *Store) watch() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := s.reload(); err != nil {
				s.logger.Warn("reload config", "error", err)
			}
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("config watcher", "error", err)
		}
	}
}

func (s *Store) reload() error {
	file, err := readSchema(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cached = file
	s.mu.Unlock()
	return nil
}

// List returns tracked accounts sorted by id so cycles visit them in a
// stable order.
func (s *Store) List(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(s.cached.UID))
	for id, flag := range s.cached.UID {
		accounts = append(accounts, domain.Account{
			ID:      domain.AccountID(id),
			Enabled: flag == enabledFlag,
		})
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })

	return accounts, nil
}

func (s *Store) Disable(ctx context.Context, id domain.AccountID) error {
	return s.SetEnabled(ctx, id, false)
}

// SetEnabled flips an account's flag and persists the whole file,
// re-reading it first so concurrent operator edits to other fields
// survive.
func (s *Store) SetEnabled(ctx context.Context, id domain.AccountID, enabled bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := readSchema(s.path)
	if err != nil {
		return err
	}
	if _, ok := file.UID[string(id)]; !ok {
		return domain.ErrAccountNotFound
	}

	flag := disabledFlag
	if enabled {
		flag = enabledFlag
	}
	file.UID[string(id)] = flag

	if err := writeSchema(s.path, file); err != nil {
		return err
	}

	s.cached = file
	return nil
}

// Add registers a new tracked account.
func (s *Store) Add(ctx context.Context, id domain.AccountID, enabled bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := readSchema(s.path)
	if err != nil {
		return err
	}
	if file.UID == nil {
		file.UID = map[string]string{}
	}

	flag := disabledFlag
	if enabled {
		flag = enabledFlag
	}
	file.UID[string(id)] = flag

	if err := writeSchema(s.path, file); err != nil {
		return err
	}

	s.cached = file
	return nil
}

func (s *Store) Prompt() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached.Prompt
}

func (s *Store) SleepInterval(ctx context.Context) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Duration(s.cached.SleepTime) * time.Second, nil
}

func readSchema(path string) (fileSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileSchema{}, fmt.Errorf("read config file: %w", err)
	}

	var file fileSchema
	if err := json.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode config file: %w", err)
	}
	if len(file.UID) == 0 {
		return fileSchema{}, errors.New("config file has no tracked accounts")
	}

	return file, nil
}

func writeSchema(path string, file fileSchema) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
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
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}
