package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knaranjo357/icfes/internal/api"
)

// persistedSession is the on-disk shape: token and user live together so
// they can never be persisted half-set.
type persistedSession struct {
	Token string   `json:"token"`
	User  api.User `json:"user"`
}

// fileStorage persists the session as a single JSON file.
type fileStorage struct {
	path string
}

func newFileStorage(path string) *fileStorage {
	return &fileStorage{path: path}
}

// load reads the persisted session. A missing file returns (nil, nil).
func (f *fileStorage) load() (*persistedSession, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var s persistedSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}
	if s.Token == "" {
		return nil, fmt.Errorf("session file has empty token")
	}
	return &s, nil
}

// save writes the session atomically (temp file + rename) with 0600 perms.
func (f *fileStorage) save(s *persistedSession) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// clear removes the persisted session. Missing file is not an error.
func (f *fileStorage) clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
