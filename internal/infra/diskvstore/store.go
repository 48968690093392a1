// Package diskvstore provides a diskv-backed implementation of
// ItemStorage, keeping one JSON record per item.
package diskvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/peterbourgon/diskv/v3"

	"github.com/laulijun/udo/internal/domain"
)

// Store implements domain.ItemStorage on top of a diskv key-value
// directory. Each item is stored under its ID as a separate file, so a
// save only rewrites what changed on disk at the cost of a full
// erase-and-write pass here.
type Store struct {
	d        *diskv.Diskv
	basePath string
}

// New creates a Store rooted at basePath. The directory is created on
// first write.
func New(basePath string) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}
}

// Load reads every record. A missing base directory reports
// domain.ErrStoreNotFound.
func (s *Store) Load() ([]domain.Item, error) {
	if _, err := os.Stat(s.basePath); err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, fmt.Errorf("stat store directory: %w", err)
	}

	var items []domain.Item
	for key := range s.d.Keys(nil) {
		val, err := s.d.Read(key)
		if err != nil {
			return nil, fmt.Errorf("read record %s: %w", key, err)
		}
		var it domain.Item
		if err := json.Unmarshal(val, &it); err != nil {
			return nil, fmt.Errorf("parse record %s: %w", key, err)
		}
		items = append(items, it)
	}
	domain.SortItems(items)
	return items, nil
}

// Save replaces the stored records with the given items: records for
// retired IDs are erased, the rest rewritten.
func (s *Store) Save(items []domain.Item) error {
	keep := make(map[string]bool, len(items))
	for _, it := range items {
		keep[strconv.Itoa(it.ID)] = true
	}

	if _, err := os.Stat(s.basePath); err == nil {
		for key := range s.d.Keys(nil) {
			if !keep[key] {
				if err := s.d.Erase(key); err != nil {
					return fmt.Errorf("erase record %s: %w", key, err)
				}
			}
		}
	}

	for _, it := range items {
		data, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("marshal item %d: %w", it.ID, err)
		}
		if err := s.d.Write(strconv.Itoa(it.ID), data); err != nil {
			return fmt.Errorf("write record %d: %w", it.ID, err)
		}
	}
	return nil
}

// Ensure Store implements ItemStorage.
var _ domain.ItemStorage = (*Store)(nil)
