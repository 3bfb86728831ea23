// Package reminder schedules in-process "is it worth it?" nudges.
//
// The scheduler only promises delivery while the process lives; there is
// no platform notification channel behind it. Callers treat scheduling
// as fire-and-forget and resolve the payload's item id back through the
// state manager at delivery time.
package reminder

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Payload identifies the item a reminder is about. It travels opaquely
// from Schedule to the delivery callback.
type Payload struct {
	ItemID string `json:"itemId"`
}

// DeliveryFunc receives a fired reminder.
type DeliveryFunc func(p Payload, title, body string)

type pending struct {
	timer *time.Timer
}

// Scheduler fires one callback per scheduled reminder. Safe for
// concurrent use.
type Scheduler struct {
	mu      sync.Mutex
	log     *slog.Logger
	deliver DeliveryFunc
	queue   map[string]pending
}

// NewScheduler returns a Scheduler that hands fired reminders to deliver.
func NewScheduler(deliver DeliveryFunc, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		log:     log,
		deliver: deliver,
		queue:   make(map[string]pending),
	}
}

// Schedule registers a reminder to fire at fireAt and returns its handle.
// A fireAt in the past fires immediately.
func (s *Scheduler) Schedule(fireAt time.Time, p Payload, title, body string) string {
	handle := uuid.NewString()
	d := time.Until(fireAt)
	if d < 0 {
		d = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue[handle] = pending{
		timer: time.AfterFunc(d, func() {
			s.mu.Lock()
			delete(s.queue, handle)
			s.mu.Unlock()
			s.log.Debug("reminder fired", "handle", handle, "item_id", p.ItemID)
			s.deliver(p, title, body)
		}),
	}
	s.log.Debug("reminder scheduled", "handle", handle, "item_id", p.ItemID, "fire_at", fireAt)
	return handle
}

// Cancel stops the reminder with the given handle. It reports whether the
// reminder was still pending.
func (s *Scheduler) Cancel(handle string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pd, ok := s.queue[handle]
	if !ok {
		return false
	}
	pd.timer.Stop()
	delete(s.queue, handle)
	return true
}

// Pending reports how many reminders have not fired yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Stop cancels every outstanding reminder.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for handle, pd := range s.queue {
		pd.timer.Stop()
		delete(s.queue, handle)
	}
}
