// Package tier measures how far a stat total sits from the breakpoints of
// the formula that consumes it.
package tier

import (
	"sort"

	"github.com/udisondev/gearset/internal/formula"
	"github.com/udisondev/gearset/internal/stat"
)

// MaxSearch bounds how many points are examined on either side of a total.
// No game bracket is anywhere near this wide.
const MaxSearch = 4096

// Tier is the distance from total to the surrounding breakpoints.
// Previous is 0 exactly on a breakpoint; Previous+Next is the bracket width.
type Tier struct {
	Previous int
	Next     int
}

// Zero reports whether the stat has no tier information.
func (t Tier) Zero() bool {
	return t.Previous == 0 && t.Next == 0
}

// Calculate locates the bracket of f containing total.
// Monotonic formulas are searched by bisection, others by a bounded scan.
// A side with no change inside MaxSearch reports MaxSearch (below) or 0 (above).
func Calculate(total int, f func(int) int, monotonic bool) Tier {
	if f == nil {
		return Tier{}
	}
	if monotonic {
		return bisect(total, f)
	}
	return scan(total, f)
}

func bisect(total int, f func(int) int) Tier {
	v := f(total)

	below := sort.Search(MaxSearch+1, func(d int) bool {
		return d > 0 && f(total-d) != v
	})
	above := sort.Search(MaxSearch+1, func(d int) bool {
		return d > 0 && f(total+d) != v
	})

	return finish(below, above)
}

func scan(total int, f func(int) int) Tier {
	v := f(total)

	below := MaxSearch + 1
	for d := 1; d <= MaxSearch; d++ {
		if f(total-d) != v {
			below = d
			break
		}
	}
	above := MaxSearch + 1
	for d := 1; d <= MaxSearch; d++ {
		if f(total+d) != v {
			above = d
			break
		}
	}

	return finish(below, above)
}

// finish converts distances to the nearest differing points into a Tier.
func finish(below, above int) Tier {
	t := Tier{Previous: below - 1}
	if above <= MaxSearch {
		t.Next = above
	}
	return t
}

// ForKind computes the tier of kind at total using the level constants in
// mods. Kinds without breakpoints return the zero Tier.
func ForKind(kind stat.Kind, total int, mods formula.Mods) Tier {
	f, monotonic, ok := mods.Breakpoint(kind)
	if !ok {
		return Tier{}
	}
	return Calculate(total, f, monotonic)
}
