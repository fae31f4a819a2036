// Package formula holds the integer combat formulas shared by the tier and
// derived-stat calculators. All results are in permille unless noted.
package formula

import "github.com/udisondev/gearset/internal/stat"

// Mods are the level-dependent constants every formula is parameterized by.
type Mods struct {
	Level int
	Main  int
	Sub   int
	Div   int

	// Attack power scaling; tanks use their own factor.
	AP     int
	APTank int
}

type bracket struct {
	cap    int
	div    int
	ap     int
	apTank int
}

// brackets is sorted by cap. Levels up to 50 divide by the sub baseline.
var brackets = []bracket{
	{cap: 50, div: 0, ap: 75, apTank: 52},
	{cap: 60, div: 600, ap: 100, apTank: 79},
	{cap: 70, div: 900, ap: 125, apTank: 105},
	{cap: 80, div: 1300, ap: 165, apTank: 115},
	{cap: 90, div: 1900, ap: 195, apTank: 156},
}

// ModsForLevel returns the constants for level. Main and Sub come from the
// stat catalog at the exact level; Div and AP come from the level bracket.
// Levels above the last bracket use the last bracket.
func ModsForLevel(level int) Mods {
	base, ok := stat.Level(level)
	if !ok {
		if level > stat.MaxLevel {
			level = stat.MaxLevel
		} else {
			level = 1
		}
		base, _ = stat.Level(level)
	}

	b := brackets[len(brackets)-1]
	for _, candidate := range brackets {
		if level <= candidate.cap {
			b = candidate
			break
		}
	}

	div := b.div
	if div == 0 {
		div = base.Sub
	}
	if div <= 0 {
		div = 1
	}

	return Mods{
		Level:  level,
		Main:   base.Main,
		Sub:    base.Sub,
		Div:    div,
		AP:     b.ap,
		APTank: b.apTank,
	}
}
