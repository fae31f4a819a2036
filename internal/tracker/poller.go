package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/gearset/internal/engine"
	"github.com/udisondev/gearset/internal/gear"
	"github.com/udisondev/gearset/internal/snapshot"
)

// Source yields the current snapshot of every observed character.
type Source interface {
	Snapshots(ctx context.Context) ([]snapshot.Snapshot, error)
}

// Store persists freshly built results.
type Store interface {
	Save(ctx context.Context, characterID int64, res *engine.Result) error
}

// Poller periodically reads a Source and drives one Tracker per character.
type Poller struct {
	mu       sync.RWMutex
	trackers map[int64]*Tracker

	src   Source
	cat   gear.Catalog
	store Store // optional

	onChange func(snapshot.Snapshot, *engine.Result)

	interval   time.Duration
	numWorkers int
}

// NewPoller creates a poller. store may be nil.
func NewPoller(src Source, cat gear.Catalog, store Store, interval time.Duration) *Poller {
	return &Poller{
		trackers:   make(map[int64]*Tracker, 64),
		src:        src,
		cat:        cat,
		store:      store,
		interval:   interval,
		numWorkers: runtime.NumCPU(),
	}
}

// SetNumWorkers bounds how many characters are recomputed in parallel.
func (p *Poller) SetNumWorkers(n int) {
	if n < 1 {
		n = 1
	}
	p.numWorkers = n
}

// OnChange registers fn to run after each poll for every rebuilt result,
// in source order. Must be set before Start.
func (p *Poller) OnChange(fn func(snapshot.Snapshot, *engine.Result)) {
	p.onChange = fn
}

// Count returns the number of tracked characters.
func (p *Poller) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.trackers)
}

// Result returns the latest result for a character, or nil.
func (p *Poller) Result(characterID int64) *engine.Result {
	p.mu.RLock()
	t, ok := p.trackers[characterID]
	p.mu.RUnlock()
	if !ok {
		return nil
	}
	return t.Current()
}

// Start polls until ctx is cancelled. A failed poll is logged and the loop
// keeps going.
func (p *Poller) Start(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	slog.Info("gear poller started", "interval", p.interval, "workers", p.numWorkers)

	if _, err := p.PollOnce(ctx); err != nil && ctx.Err() == nil {
		slog.Error("poll failed", "err", err)
	}

	for {
		select {
		case <-ctx.Done():
			slog.Info("gear poller stopping")
			return ctx.Err()

		case <-ticker.C:
			if _, err := p.PollOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("poll failed", "err", err)
			}
		}
	}
}

// PollOnce reads the source once and feeds every tracker. Characters that
// vanished from the source are forgotten. It returns the ids whose result
// was rebuilt.
func (p *Poller) PollOnce(ctx context.Context) ([]int64, error) {
	snaps, err := p.src.Snapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading snapshots: %w", err)
	}

	seen := make(map[int64]struct{}, len(snaps))
	work := make([]*Tracker, len(snaps))

	p.mu.Lock()
	for i, s := range snaps {
		seen[s.CharacterID] = struct{}{}
		t, ok := p.trackers[s.CharacterID]
		if !ok {
			t = NewTracker(s.CharacterID, p.cat)
			p.trackers[s.CharacterID] = t
		}
		work[i] = t
	}
	for id := range p.trackers {
		if _, ok := seen[id]; !ok {
			delete(p.trackers, id)
			slog.Debug("character no longer observed", "character", id)
		}
	}
	p.mu.Unlock()

	rebuilt := make([]*engine.Result, len(snaps))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.numWorkers)
	for i, s := range snaps {
		i, s := i, s
		t := work[i]
		g.Go(func() error {
			res, changed := t.Observe(s.Set)
			if !changed {
				return nil
			}

			slog.Debug("gear recalculated",
				"character", s.CharacterID,
				"name", s.Name,
				"items", len(res.Set.Items),
				"fingerprint", res.Fingerprint.String())

			if p.store != nil {
				if err := p.store.Save(gctx, s.CharacterID, res); err != nil {
					// next poll sees the same set and would not retry
					t.Invalidate()
					return fmt.Errorf("saving character %d: %w", s.CharacterID, err)
				}
			}
			rebuilt[i] = res
			return nil
		})
	}
	err = g.Wait()

	var changed []int64
	for i, res := range rebuilt {
		if res == nil {
			continue
		}
		changed = append(changed, snaps[i].CharacterID)
		if p.onChange != nil {
			p.onChange(snaps[i], res)
		}
	}
	return changed, err
}
