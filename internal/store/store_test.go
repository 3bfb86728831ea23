package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/worthit/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	return s
}

func sampleItems() []model.Item {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	reminder := at.Add(72 * time.Hour)
	return []model.Item{
		{
			ID:            "b2c1",
			Price:         249.99,
			HoursRequired: 9.52,
			CreatedAt:     at.Add(time.Hour),
			Status:        model.StatusPending,
			ReminderAt:    &reminder,
			Note:          "mechanical keyboard",
			Link:          "https://example.com/kb",
		},
		{
			ID:            "a1b2",
			Price:         12.5,
			HoursRequired: 0.47,
			CreatedAt:     at,
			Status:        model.StatusBought,
		},
	}
}

func TestItemsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	want := sampleItems()
	require.NoError(t, s.SaveItems(want))

	got := s.LoadItems()
	assert.Equal(t, want, got)
}

func TestUserRoundTrip(t *testing.T) {
	s := newTestStore(t)

	want := model.User{
		IncomeType:    model.IncomeSalary,
		Salary:        90000,
		HoursPerWeek:  40,
		TaxEnabled:    true,
		TaxRate:       0.25,
		NetHourlyRate: 32.45,
	}
	require.NoError(t, s.SaveUser(want))

	got := s.LoadUser()
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestLoadDefaults(t *testing.T) {
	s := newTestStore(t)

	t.Run("missing blobs", func(t *testing.T) {
		assert.Nil(t, s.LoadUser())
		assert.Empty(t, s.LoadItems())
	})

	t.Run("corrupt items does not break a valid user", func(t *testing.T) {
		require.NoError(t, s.SaveUser(model.User{IncomeType: model.IncomeHourly, HourlyRate: 35, NetHourlyRate: 26.25}))
		require.NoError(t, os.WriteFile(filepath.Join(s.dir, "items.json"), []byte("{not json"), 0o644))

		st := s.LoadState(context.Background())
		require.NotNil(t, st.User)
		assert.Equal(t, 26.25, st.User.NetHourlyRate)
		assert.Empty(t, st.Items)
	})

	t.Run("wrong shape substitutes defaults", func(t *testing.T) {
		require.NoError(t, s.Set(KeyItems, []byte(`{"not":"an array"}`)))
		assert.Empty(t, s.LoadItems())

		require.NoError(t, s.Set(KeyUser, []byte(`[1,2,3]`)))
		assert.Nil(t, s.LoadUser())
	})

	t.Run("null items blob loads as empty, not nil", func(t *testing.T) {
		require.NoError(t, s.Set(KeyItems, []byte(`null`)))
		assert.NotNil(t, s.LoadItems())
		assert.Empty(t, s.LoadItems())
	})
}

func TestClearAll(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveUser(model.User{IncomeType: model.IncomeHourly}))
	require.NoError(t, s.SaveItems(sampleItems()))
	require.NoError(t, s.ClearAll())

	assert.Nil(t, s.LoadUser())
	assert.Empty(t, s.LoadItems())

	// Clearing an already-empty store is fine.
	assert.NoError(t, s.ClearAll())
}

func TestGetSetRaw(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Get("user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("user", []byte(`{}`)))
	raw, ok, err := s.Get("user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{}`), raw)
}
