// Package engine runs the full stat pipeline for one loadout.
package engine

import (
	"github.com/udisondev/gearset/internal/calc"
	"github.com/udisondev/gearset/internal/gear"
)

// Result is an immutable snapshot of one computation.
type Result struct {
	Set         *gear.EquipmentSet
	Report      *gear.Report
	Calculated  []calc.CalculatedStat
	Fingerprint gear.Fingerprint
}

// Compute recalculates set against cat.
func Compute(set *gear.EquipmentSet, cat gear.Catalog) *Result {
	report := gear.Recalculate(set, cat)
	return &Result{
		Set:         set,
		Report:      report,
		Calculated:  calc.Derive(report),
		Fingerprint: set.Fingerprint(),
	}
}

// ComputeReport builds a set from a raw item list and computes it.
// A nil item list means no equipment is available: ok is false and no
// report is produced. Items with id 0 are skipped.
func ComputeReport(items []gear.Item, ch gear.Character, cat gear.Catalog) (*Result, bool) {
	if items == nil {
		return nil, false
	}
	set := gear.NewEquipmentSet(ch, gear.Compact(items))
	return Compute(set, cat), true
}
