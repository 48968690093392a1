package engine

import (
	"testing"
	"time"

	"github.com/laulijun/udo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTask(t *testing.T, title string, due time.Time) domain.Item {
	t.Helper()
	it, err := domain.NewTask(title, nil, due)
	require.NoError(t, err)
	return it
}

func mustEvent(t *testing.T, title string, start, end time.Time) domain.Item {
	t.Helper()
	it, err := domain.NewEvent(title, nil, start, end)
	require.NoError(t, err)
	return it
}

func TestCache_InsertThenGet(t *testing.T) {
	c := NewCache()
	due := time.Date(2024, 5, 20, 9, 0, 0, 0, time.Local)

	inserted := c.Insert(mustTask(t, "buy milk", due))
	assert.Equal(t, 1, inserted.ID)

	got, ok := c.Get(inserted.ID)
	require.True(t, ok)
	assert.Equal(t, inserted, got)
}

func TestCache_IDsAreNeverReused(t *testing.T) {
	c := NewCache()
	due := time.Date(2024, 5, 20, 0, 0, 0, 0, time.Local)

	first := c.Insert(mustTask(t, "one", due))
	require.True(t, c.Delete(first.ID))

	second := c.Insert(mustTask(t, "two", due))
	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestCache_DeleteTwiceReturnsFalse(t *testing.T) {
	c := NewCache()
	it := c.Insert(mustTask(t, "one", time.Date(2024, 5, 20, 0, 0, 0, 0, time.Local)))

	assert.True(t, c.Delete(it.ID))
	assert.False(t, c.Delete(it.ID))

	_, ok := c.Get(it.ID)
	assert.False(t, ok)
}

func TestCache_GetReturnsCopies(t *testing.T) {
	c := NewCache()
	it, err := domain.NewTask("tagged", []string{"a"}, time.Date(2024, 5, 20, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	stored := c.Insert(it)

	got, ok := c.Get(stored.ID)
	require.True(t, ok)
	got.Tags[0] = "mutated"
	got.Title = "mutated"

	again, ok := c.Get(stored.ID)
	require.True(t, ok)
	assert.Equal(t, "a", again.Tags[0])
	assert.Equal(t, "tagged", again.Title)
}

func TestCache_ItemsOn(t *testing.T) {
	c := NewCache()
	day := time.Date(2024, 5, 20, 0, 0, 0, 0, time.Local)

	onDay := c.Insert(mustEvent(t, "on the day",
		time.Date(2024, 5, 20, 9, 0, 0, 0, time.Local),
		time.Date(2024, 5, 20, 10, 0, 0, 0, time.Local)))
	c.Insert(mustEvent(t, "day after",
		time.Date(2024, 5, 21, 9, 0, 0, 0, time.Local),
		time.Date(2024, 5, 21, 10, 0, 0, 0, time.Local)))
	dueTask := c.Insert(mustTask(t, "due that day", time.Date(2024, 5, 20, 17, 0, 0, 0, time.Local)))
	plan, err := domain.NewPlan("undated", nil)
	require.NoError(t, err)
	c.Insert(plan)

	got := c.ItemsOn(day)
	require.Len(t, got, 2)
	assert.Equal(t, onDay.ID, got[0].ID)
	assert.Equal(t, dueTask.ID, got[1].ID)
}

func TestCache_ItemsBetweenInclusive(t *testing.T) {
	c := NewCache()

	edge := c.Insert(mustTask(t, "on the edge", time.Date(2024, 5, 22, 0, 0, 0, 0, time.Local)))
	inside := c.Insert(mustTask(t, "inside", time.Date(2024, 5, 21, 12, 0, 0, 0, time.Local)))
	c.Insert(mustTask(t, "outside", time.Date(2024, 5, 23, 0, 0, 1, 0, time.Local)))

	got := c.ItemsBetween(
		time.Date(2024, 5, 21, 0, 0, 0, 0, time.Local),
		time.Date(2024, 5, 22, 0, 0, 0, 0, time.Local),
	)
	require.Len(t, got, 2)
	assert.Equal(t, inside.ID, got[0].ID)
	assert.Equal(t, edge.ID, got[1].ID)
}

func TestCache_RestoreKeepsIDsAndAdvancesCounter(t *testing.T) {
	c := NewCache()
	a := mustTask(t, "a", time.Date(2024, 5, 20, 0, 0, 0, 0, time.Local))
	a.ID = 7
	b := mustTask(t, "b", time.Date(2024, 5, 21, 0, 0, 0, 0, time.Local))
	b.ID = 3

	c.Restore([]domain.Item{a, b})

	got, ok := c.Get(7)
	require.True(t, ok)
	assert.Equal(t, "a", got.Title)

	fresh := c.Insert(mustTask(t, "c", time.Date(2024, 5, 22, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, 8, fresh.ID)
}
