// Package tracker keeps the latest computed report per observed character and
// rebuilds it only when the equipment actually changed.
package tracker

import (
	"sync"

	"github.com/udisondev/gearset/internal/engine"
	"github.com/udisondev/gearset/internal/gear"
)

// Tracker owns the cached result for one character.
// Observe is the only writer; readers get immutable results.
type Tracker struct {
	mu  sync.Mutex
	id  int64
	cat gear.Catalog

	current *engine.Result
	builds  int
}

// NewTracker creates a tracker with no cached result.
func NewTracker(characterID int64, cat gear.Catalog) *Tracker {
	return &Tracker{id: characterID, cat: cat}
}

// CharacterID returns the tracked character.
func (t *Tracker) CharacterID() int64 {
	return t.id
}

// Observe feeds a fresh snapshot. A nil set means the equipment is
// unavailable: the cache is dropped and nothing is returned.
// changed is true when a new result was built.
func (t *Tracker) Observe(set *gear.EquipmentSet) (res *engine.Result, changed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if set == nil {
		t.current = nil
		return nil, false
	}
	if t.current != nil && gear.SameSet(t.current.Set, set) {
		return t.current, false
	}

	t.current = engine.Compute(gear.NewEquipmentSet(set.Character, set.Items), t.cat)
	t.builds++
	return t.current, true
}

// Current returns the cached result, or nil.
func (t *Tracker) Current() *engine.Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Invalidate forces the next Observe to rebuild.
func (t *Tracker) Invalidate() {
	t.mu.Lock()
	t.current = nil
	t.mu.Unlock()
}

// Builds returns how many times a result was computed.
func (t *Tracker) Builds() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.builds
}
