package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/Makepad-fr/worthit/internal/model"
	"github.com/Makepad-fr/worthit/internal/timevalue"
)

func testItems() []model.Item {
	now := time.Now()
	return []model.Item{
		{ID: "3", Price: 300, HoursRequired: 30, CreatedAt: now, Status: model.StatusPassed},
		{ID: "2", Price: 200, HoursRequired: 20, CreatedAt: now.Add(-time.Hour), Status: model.StatusBought},
		{ID: "1", Price: 100, HoursRequired: 10, CreatedAt: now.Add(-2 * time.Hour), Status: model.StatusPassed},
	}
}

func TestStats(t *testing.T) {
	evaluated, passed, saved := Stats(testItems())
	assert.Equal(t, 3, evaluated)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 400.0, saved)

	evaluated, passed, saved = Stats(nil)
	assert.Zero(t, evaluated)
	assert.Zero(t, passed)
	assert.Zero(t, saved)
}

func TestNextFilter(t *testing.T) {
	f := model.FilterAll
	seen := []model.FilterStatus{f}
	for i := 0; i < 3; i++ {
		f = nextFilter(f)
		seen = append(seen, f)
	}
	assert.Equal(t, []model.FilterStatus{
		model.FilterAll,
		model.FilterStatus(model.StatusPending),
		model.FilterStatus(model.StatusBought),
		model.FilterStatus(model.StatusPassed),
	}, seen)
	assert.Equal(t, model.FilterAll, nextFilter(f), "cycle wraps around")
}

func TestHistoryModelFilter(t *testing.T) {
	m := newHistoryModel(testItems(), timevalue.NewFormatter(language.AmericanEnglish))
	assert.Len(t, m.list.Items(), 3)

	m.filter = model.FilterStatus(model.StatusBought)
	m.refresh()
	assert.Len(t, m.list.Items(), 1)

	m.filter = model.FilterStatus(model.StatusPassed)
	m.refresh()
	assert.Len(t, m.list.Items(), 2)
}

func press(t *testing.T, m historyModel, keys ...string) historyModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		var ok bool
		m, ok = next.(historyModel)
		assert.True(t, ok)
	}
	return m
}

func TestHistoryModelStatusKeys(t *testing.T) {
	m := newHistoryModel(testItems(), timevalue.NewFormatter(language.AmericanEnglish))

	m = press(t, m, "b")
	assert.True(t, m.changed)
	assert.Equal(t, model.StatusBought, m.items[0].Status)

	m = press(t, m, "p")
	assert.Equal(t, model.StatusPassed, m.items[0].Status)
}

func TestHistoryModelDeleteUndo(t *testing.T) {
	m := newHistoryModel(testItems(), timevalue.NewFormatter(language.AmericanEnglish))
	deleted := m.items[0]

	m = press(t, m, "d")
	assert.Len(t, m.items, 2)
	assert.True(t, m.changed)

	m = press(t, m, "u")
	assert.Len(t, m.items, 3)
	assert.Equal(t, deleted.ID, m.items[0].ID)

	// Undo is single-level.
	m = press(t, m, "u")
	assert.Len(t, m.items, 3)
}
