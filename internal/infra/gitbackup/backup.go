// Package gitbackup decorates an ItemStorage with Git-based history:
// every successful save is committed to a repository rooted at the data
// directory, so the stored files can be inspected or rolled back with
// ordinary git tooling.
package gitbackup

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/laulijun/udo/internal/domain"
)

const (
	commitName  = "udo"
	commitEmail = "udo@localhost"
)

// Backup wraps another ItemStorage and commits the data directory
// after each save. Backup failures are logged, never surfaced: the
// save itself already succeeded and losing history beats losing data.
type Backup struct {
	inner   domain.ItemStorage
	dataDir string
	log     domain.Logger
}

// New wraps inner so that saves are committed to a repository at
// dataDir. The repository is initialized on first use.
func New(inner domain.ItemStorage, dataDir string, log domain.Logger) *Backup {
	if log == nil {
		log = domain.NopLogger{}
	}
	return &Backup{inner: inner, dataDir: dataDir, log: log}
}

// Load delegates to the wrapped storage.
func (b *Backup) Load() ([]domain.Item, error) {
	return b.inner.Load()
}

// Save delegates to the wrapped storage, then commits the data
// directory.
func (b *Backup) Save(items []domain.Item) error {
	if err := b.inner.Save(items); err != nil {
		return err
	}
	if err := b.commit(len(items)); err != nil {
		b.log.Warn("backup", fmt.Sprintf("commit failed: %v", err))
	}
	return nil
}

func (b *Backup) commit(count int) error {
	repo, err := b.openOrInit()
	if err != nil {
		return err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}

	if err := wt.AddGlob("."); err != nil {
		return fmt.Errorf("stage changes: %w", err)
	}

	msg := fmt.Sprintf("save %d items", count)
	_, err = wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  commitName,
			Email: commitEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		// Nothing changed since the last save.
		if errors.Is(err, git.ErrEmptyCommit) {
			return nil
		}
		return fmt.Errorf("commit: %w", err)
	}
	b.log.Debug("backup", msg)
	return nil
}

func (b *Backup) openOrInit() (*git.Repository, error) {
	if err := os.MkdirAll(b.dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	repo, err := git.PlainOpen(b.dataDir)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	repo, err = git.PlainInit(b.dataDir, false)
	if err != nil {
		return nil, fmt.Errorf("init git repository: %w", err)
	}
	return repo, nil
}

// Ensure Backup implements ItemStorage.
var _ domain.ItemStorage = (*Backup)(nil)
