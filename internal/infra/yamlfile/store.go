// Package yamlfile provides a YAML file-based implementation of ItemStorage.
package yamlfile

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/laulijun/udo/internal/domain"
	"gopkg.in/yaml.v3"
)

// storeData represents the YAML file structure.
type storeData struct {
	Items []domain.Item `yaml:"items"`
}

// Store implements domain.ItemStorage using a single YAML file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Load reads the full item list. A missing file reports
// domain.ErrStoreNotFound so the caller can start empty.
func (s *Store) Load() ([]domain.Item, error) {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	return data.Items, nil
}

// Save replaces the stored item list.
func (s *Store) Save(items []domain.Item) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	content, err := yaml.Marshal(&storeData{Items: items})
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// Ensure Store implements ItemStorage.
var _ domain.ItemStorage = (*Store)(nil)
