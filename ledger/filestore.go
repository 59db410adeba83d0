package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/bililionairestory/casino-bot/models"
)

// FileStore persists the whole account map as a single human-readable JSON
// document, the same layout the bot has always used on disk. Every Save
// rewrites the full document atomically (temp file + rename), so a crash
// mid-write leaves the previous snapshot intact.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the JSON file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (map[string]*models.Account, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		log.WithField("path", s.path).Info("Data file absent, starting with empty store")
		return make(map[string]*models.Account), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStoreUnavailable, s.path, err)
	}

	accounts := make(map[string]*models.Account)
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrCorruptStore, s.path, err)
	}
	return accounts, nil
}

func (s *FileStore) Save(ctx context.Context, accounts map[string]*models.Account, dirty []string) error {
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding accounts: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
