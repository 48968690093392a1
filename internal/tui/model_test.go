package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laulijun/udo/internal/domain"
	"github.com/laulijun/udo/internal/engine"
	"github.com/laulijun/udo/internal/parser"
)

type mockClock struct {
	now time.Time
}

func (c *mockClock) Now() time.Time { return c.now }

type memStorage struct {
	items []domain.Item
	saves int
}

func (m *memStorage) Load() ([]domain.Item, error) {
	if m.items == nil {
		return nil, domain.ErrStoreNotFound
	}
	return m.items, nil
}

func (m *memStorage) Save(items []domain.Item) error {
	m.items = items
	m.saves++
	return nil
}

func newTestModel(t *testing.T) (Model, *memStorage) {
	t.Helper()
	clock := &mockClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)}
	st := &memStorage{}
	e := engine.New(st, nil)
	require.NoError(t, e.Load())
	return New(parser.New(clock), e, clock), st
}

func typeCommand(m Model, raw string) Model {
	m.input.SetValue(raw)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func TestModel_AddShowsFeedbackAndPanel(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeCommand(m, "add buy milk on 1/5/2024")

	assert.Equal(t, "added task 1: buy milk", m.feedback)
	assert.False(t, m.feedbackErr)
	assert.Contains(t, m.View(), "buy milk")
	assert.Empty(t, m.input.Value(), "input resets after submit")
}

func TestModel_UnknownCommandIsAnError(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeCommand(m, "frobnicate everything")

	assert.True(t, m.feedbackErr)
	assert.Contains(t, m.feedback, "could not understand")
}

func TestModel_ListSwitchesToResultsPanel(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeCommand(m, "add plan something")
	m = typeCommand(m, "list all")

	assert.True(t, m.hasListing)
	assert.Contains(t, m.View(), "results")

	// The next non-list command returns to the schedule panels.
	m = typeCommand(m, "add another plan")
	assert.False(t, m.hasListing)
	assert.Contains(t, m.View(), "today")
}

func TestModel_UpcomingPanelCoversThreeDays(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeCommand(m, "add far task on 20/5/2024")
	m = typeCommand(m, "add close task on 2/5/2024")

	view := m.View()
	assert.Contains(t, view, "close task")
	assert.NotContains(t, view, "far task")
}

func TestModel_ExitSavesAndQuits(t *testing.T) {
	m, st := newTestModel(t)
	m = typeCommand(m, "add buy milk on 1/5/2024")

	m.input.SetValue("exit")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	assert.True(t, m.quitting)
	assert.Equal(t, 1, st.saves)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_CtrlCSavesAndQuits(t *testing.T) {
	m, st := newTestModel(t)
	m = typeCommand(m, "add plan something")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)

	assert.True(t, m.quitting)
	assert.Equal(t, 1, st.saves)
	require.NotNil(t, cmd)
}
