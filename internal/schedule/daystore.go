package schedule

import (
	"time"

	"github.com/Alwaysrakesh/Zen-Grow/internal/store"
)

// DayStore holds the activated day schedules in memory, keyed by date with
// upsert semantics: saving a schedule for a date that already has one
// replaces it in place.
type DayStore struct {
	store *store.Store[DaySchedule]
	clock store.Clock
}

// DayStoreOption configures a DayStore.
type DayStoreOption func(*DayStore)

// WithDayStoreClock overrides the clock used for update timestamps.
func WithDayStoreClock(c store.Clock) DayStoreOption {
	return func(s *DayStore) {
		s.clock = c
	}
}

// NewDayStore creates an empty day-schedule store.
func NewDayStore(opts ...DayStoreOption) *DayStore {
	s := &DayStore{clock: store.SystemClock{}}
	for _, opt := range opts {
		opt(s)
	}
	s.store = store.New(func(d DaySchedule) string { return d.ID }, store.WithClock[DaySchedule](s.clock))
	return s
}

// Schedules returns a snapshot of all stored schedules.
func (s *DayStore) Schedules() []DaySchedule {
	return s.store.All()
}

// Today returns the schedule for the current calendar date, if any.
func (s *DayStore) Today() (DaySchedule, bool) {
	today := s.clock.Now().Format("2006-01-02")
	for _, ds := range s.store.All() {
		if ds.Date == today {
			return ds, true
		}
	}
	return DaySchedule{}, false
}

// Save upserts the schedule by date: an existing schedule for the same date
// is replaced wholesale, otherwise the schedule is appended. The lookup and
// write are a single store operation, so concurrent saves for one date
// cannot insert duplicates.
func (s *DayStore) Save(ds DaySchedule) DaySchedule {
	return s.store.Upsert(
		func(existing DaySchedule) bool { return existing.Date == ds.Date },
		func(existing DaySchedule) DaySchedule {
			ds.ID = existing.ID
			return ds
		},
		func(id string, createdAt time.Time) DaySchedule {
			if ds.ID == "" {
				ds.ID = id
			}
			if ds.CreatedAt.IsZero() {
				ds.CreatedAt = createdAt
				ds.UpdatedAt = createdAt
			}
			return ds
		},
	)
}

// UpdateItem merges the partial updates into one item of a schedule and
// bumps the schedule's UpdatedAt. Unknown schedule or item ids are silent
// no-ops.
func (s *DayStore) UpdateItem(scheduleID, itemID string, u ItemUpdates) {
	now := s.clock.Now()
	s.store.Update(scheduleID, func(ds DaySchedule) DaySchedule {
		items := make([]DayItem, len(ds.Items))
		copy(items, ds.Items)
		for i, item := range items {
			if item.ID != itemID {
				continue
			}
			if u.Title != nil {
				items[i].Title = *u.Title
			}
			if u.Completed != nil {
				items[i].Completed = *u.Completed
			}
			if u.StartTime != nil {
				items[i].StartTime = *u.StartTime
			}
			if u.EndTime != nil {
				items[i].EndTime = *u.EndTime
			}
			break
		}
		ds.Items = items
		ds.UpdatedAt = now
		return ds
	})
}

// DeleteItem removes one item from a schedule and bumps UpdatedAt. Unknown
// ids are silent no-ops.
func (s *DayStore) DeleteItem(scheduleID, itemID string) {
	now := s.clock.Now()
	s.store.Update(scheduleID, func(ds DaySchedule) DaySchedule {
		items := make([]DayItem, 0, len(ds.Items))
		for _, item := range ds.Items {
			if item.ID != itemID {
				items = append(items, item)
			}
		}
		ds.Items = items
		ds.UpdatedAt = now
		return ds
	})
}

// Subscribe registers fn to run after every schedule mutation.
func (s *DayStore) Subscribe(fn func()) (unsubscribe func()) {
	return s.store.Subscribe(fn)
}
