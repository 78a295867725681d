package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID        string
	Text      string
	CreatedAt time.Time
}

func noteID(n note) string { return n.ID }

func addNote(s *Store[note], text string) note {
	return s.Add(func(id string, createdAt time.Time) note {
		return note{ID: id, Text: text, CreatedAt: createdAt}
	})
}

func TestStore_AddAssignsServerFields(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	s := New(noteID, WithClock[note](NewFakeClock(now)))

	n := addNote(s, "first")
	require.NotEmpty(t, n.ID)
	assert.Equal(t, now, n.CreatedAt)
	assert.Equal(t, []note{n}, s.All())
}

func TestStore_AddAssignsUniqueIDs(t *testing.T) {
	s := New(noteID)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := addNote(s, "x")
		require.False(t, seen[n.ID], "duplicate id %q", n.ID)
		seen[n.ID] = true
	}
}

func TestStore_AddUpdateDeleteSequence(t *testing.T) {
	s := New(noteID)

	a := addNote(s, "a")
	b := addNote(s, "b")
	assert.Equal(t, 2, s.Len())

	s.Update(a.ID, func(n note) note {
		n.Text = "a2"
		return n
	})
	got, ok := s.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, "a2", got.Text)

	s.Delete(a.ID)
	assert.Equal(t, 1, s.Len())
	_, ok = s.Get(a.ID)
	assert.False(t, ok)

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID)
}

func TestStore_UpdateUnknownIDIsNoOp(t *testing.T) {
	s := New(noteID)
	a := addNote(s, "a")

	s.Update("missing", func(n note) note {
		n.Text = "mutated"
		return n
	})

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, a, all[0])
}

func TestStore_UpsertReplacesMatchOrInserts(t *testing.T) {
	s := New(noteID)

	first := s.Upsert(
		func(n note) bool { return n.Text == "a" },
		func(n note) note { n.Text = "a"; return n },
		func(id string, createdAt time.Time) note { return note{ID: id, Text: "a", CreatedAt: createdAt} },
	)
	require.NotEmpty(t, first.ID)
	assert.Equal(t, 1, s.Len())

	second := s.Upsert(
		func(n note) bool { return n.Text == "a" },
		func(n note) note { n.Text = "a2"; return n },
		func(id string, createdAt time.Time) note { return note{ID: id, Text: "a2", CreatedAt: createdAt} },
	)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "a2", s.All()[0].Text)
}

func TestStore_ConcurrentUpsertsInsertOnce(t *testing.T) {
	s := New(noteID)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Upsert(
				func(n note) bool { return n.Text == "only" },
				func(n note) note { return n },
				func(id string, createdAt time.Time) note { return note{ID: id, Text: "only"} },
			)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, s.Len())
}

func TestStore_DeleteUnknownIDIsNoOp(t *testing.T) {
	s := New(noteID)
	addNote(s, "a")

	s.Delete("missing")
	assert.Equal(t, 1, s.Len())
}

func TestStore_SnapshotSemantics(t *testing.T) {
	s := New(noteID)
	a := addNote(s, "a")

	snapshot := s.All()
	s.Update(a.ID, func(n note) note {
		n.Text = "changed"
		return n
	})

	assert.Equal(t, "a", snapshot[0].Text)
}

func TestStore_SubscribersFireOncePerMutation(t *testing.T) {
	s := New(noteID)

	var first, second int
	unsubFirst := s.Subscribe(func() { first++ })
	s.Subscribe(func() { second++ })

	addNote(s, "a")
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	unsubFirst()
	addNote(s, "b")
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestStore_SameCallbackSubscribedTwice(t *testing.T) {
	s := New(noteID)

	var calls int
	fn := func() { calls++ }
	unsubA := s.Subscribe(fn)
	unsubB := s.Subscribe(fn)

	addNote(s, "a")
	assert.Equal(t, 2, calls)

	unsubA()
	addNote(s, "b")
	assert.Equal(t, 3, calls)

	unsubB()
	addNote(s, "c")
	assert.Equal(t, 3, calls)
}

func TestStore_SubscriberMayReadStore(t *testing.T) {
	s := New(noteID)

	var observed int
	s.Subscribe(func() { observed = s.Len() })

	addNote(s, "a")
	assert.Equal(t, 1, observed)

	addNote(s, "b")
	assert.Equal(t, 2, observed)
}

func TestFakeClock_Advance(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewFakeClock(start)

	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
