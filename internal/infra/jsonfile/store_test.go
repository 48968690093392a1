package jsonfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/laulijun/udo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "items.json"))

	_, err := store.Load()

	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	store := New(path)

	due := time.Date(2024, 5, 20, 17, 30, 0, 0, time.Local)
	task, err := domain.NewTask("buy milk", []string{"errand"}, due)
	require.NoError(t, err)
	task.ID = 1
	plan, err := domain.NewPlan("learn go", nil)
	require.NoError(t, err)
	plan.ID = 2

	require.NoError(t, store.Save([]domain.Item{task, plan}))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "buy milk", got[0].Title)
	assert.Equal(t, []string{"errand"}, got[0].Tags)
	// JSON keeps the instant but not the Local location.
	assert.True(t, got[0].Due.Equal(due))
	assert.Equal(t, domain.TypePlan, got[1].Type)
}

func TestStore_SaveReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	store := New(path)

	first, err := domain.NewPlan("first", nil)
	require.NoError(t, err)
	require.NoError(t, store.Save([]domain.Item{first}))

	second, err := domain.NewPlan("second", nil)
	require.NoError(t, err)
	require.NoError(t, store.Save([]domain.Item{second}))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "second", got[0].Title)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := New(path).Load()

	assert.ErrorContains(t, err, "parse store file")
}
