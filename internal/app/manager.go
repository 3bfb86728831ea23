// Package app owns WorthIt's in-memory state and mediates every mutation.
package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Makepad-fr/worthit/internal/model"
	"github.com/Makepad-fr/worthit/internal/store"
	"github.com/Makepad-fr/worthit/internal/timevalue"
)

// Manager is the single authoritative holder of the profile and the item
// history. Every mutation runs under one mutex against the canonical
// slices and writes through to the store before returning, so a mutation
// always observes the latest committed state.
type Manager struct {
	mu    sync.Mutex
	store *store.Store
	log   *slog.Logger

	user  *model.User
	items []model.Item

	now   func() time.Time
	newID func() string
}

// NewManager returns an empty Manager over the given store. Call Load to
// hydrate it from disk.
func NewManager(st *store.Store, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		store: st,
		log:   log,
		items: []model.Item{},
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Load replaces in-memory state with whatever the store holds. Missing or
// corrupt records hydrate as their defaults.
func (m *Manager) Load(ctx context.Context) model.AppState {
	st := m.store.LoadState(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = st.User
	m.items = st.Items
	m.log.Debug("state loaded", "configured", st.User != nil, "items", len(st.Items))
	return m.snapshotLocked()
}

// User returns a copy of the current profile, or nil when unconfigured.
func (m *Manager) User() *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Items returns a copy of the item history, newest first.
func (m *Manager) Items() []model.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Item(nil), m.items...)
}

// State returns a copy of the full application state.
func (m *Manager) State() model.AppState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() model.AppState {
	st := model.AppState{Items: append([]model.Item(nil), m.items...)}
	if m.user != nil {
		u := *m.user
		st.User = &u
	}
	return st
}

// SetUser replaces the profile wholesale. A non-nil profile is persisted;
// nil only clears the in-memory copy (removal from disk is the clear-all
// flow's job). Fields are expected pre-validated and pre-rounded.
func (m *Manager) SetUser(u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u == nil {
		m.user = nil
		return nil
	}
	cp := *u
	m.user = &cp
	return m.store.SaveUser(cp)
}

// AddItem logs a new evaluation. HoursRequired is computed once from the
// current profile's cached net rate (0 when unconfigured) and never
// recomputed. The item is prepended so the history stays newest-first.
func (m *Manager) AddItem(price float64, note, link string, status model.ItemStatus, reminderAt *time.Time) (model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var net float64
	if m.user != nil {
		net = m.user.NetHourlyRate
	}
	if status == "" {
		status = model.StatusPending
	}
	item := model.Item{
		ID:            m.newID(),
		Price:         price,
		HoursRequired: timevalue.HoursRequired(price, net),
		CreatedAt:     m.now(),
		Status:        status,
		ReminderAt:    reminderAt,
		Note:          note,
		Link:          link,
	}
	m.items = append([]model.Item{item}, m.items...)
	if err := m.store.SaveItems(m.items); err != nil {
		return model.Item{}, err
	}
	m.log.Debug("item added", "id", item.ID, "price", price, "hours", item.HoursRequired)
	return item, nil
}

// ItemPatch lists the fields UpdateItem may change. Nil fields are left
// untouched.
type ItemPatch struct {
	Status     *model.ItemStatus
	ReminderAt *time.Time
	Note       *string
	Link       *string
}

// UpdateItem merges patch over the item with the given id. An unknown id
// changes nothing and is not an error; the (unchanged) list is still
// written through.
func (m *Manager) UpdateItem(id string, patch ItemPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID != id {
			continue
		}
		if patch.Status != nil {
			m.items[i].Status = *patch.Status
		}
		if patch.ReminderAt != nil {
			at := *patch.ReminderAt
			m.items[i].ReminderAt = &at
		}
		if patch.Note != nil {
			m.items[i].Note = *patch.Note
		}
		if patch.Link != nil {
			m.items[i].Link = *patch.Link
		}
		break
	}
	return m.store.SaveItems(m.items)
}

// FindItem returns the item with the given id, if any.
func (m *Manager) FindItem(id string) (model.Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// ReplaceItems swaps in a whole new history and persists it.
func (m *Manager) ReplaceItems(items []model.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if items == nil {
		items = []model.Item{}
	}
	m.items = append([]model.Item(nil), items...)
	return m.store.SaveItems(m.items)
}

// ClearAll removes both records from disk and resets in-memory state.
func (m *Manager) ClearAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.ClearAll(); err != nil {
		return err
	}
	m.user = nil
	m.items = []model.Item{}
	m.log.Debug("all data cleared")
	return nil
}
