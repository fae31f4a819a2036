package gear

import (
	"slices"

	"github.com/udisondev/gearset/internal/formula"
	"github.com/udisondev/gearset/internal/stat"
	"github.com/udisondev/gearset/internal/tier"
)

// Character is the context the gear is worn in.
type Character struct {
	Level  int
	Tribe  uint8
	Gender uint8
	Job    uint8 // ClassJob row id
}

// EquipmentSet is the full loadout of one observed character.
type EquipmentSet struct {
	Character
	Items []Item
}

// NewEquipmentSet copies items so later changes by the caller do not leak in.
func NewEquipmentSet(ch Character, items []Item) *EquipmentSet {
	return &EquipmentSet{
		Character: ch,
		Items:     slices.Clone(items),
	}
}

// Report is the consolidated result of one recalculation.
type Report struct {
	Character Character

	Stats map[stat.Kind]StatData
	Items []ItemStats // same order as EquipmentSet.Items

	MateriaCount map[uint32]int // materia item id -> count across all items
	EmptySlots   int
}

// Stat returns the row for kind; untracked kinds yield a zero row.
func (r *Report) Stat(kind stat.Kind) StatData {
	if d, ok := r.Stats[kind]; ok {
		return d
	}
	return StatData{Kind: kind}
}

// Ordered returns every stat row in display order.
func (r *Report) Ordered() []StatData {
	out := make([]StatData, 0, len(r.Stats))
	for _, k := range stat.All {
		if d, ok := r.Stats[k]; ok {
			out = append(out, d)
		}
	}
	return out
}

// MateriaIDs returns the melded materia item ids, ascending.
func (r *Report) MateriaIDs() []uint32 {
	ids := make([]uint32, 0, len(r.MateriaCount))
	for id := range r.MateriaCount {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Recalculate rebuilds the whole report from the current item list.
// It never patches a previous report.
func Recalculate(set *EquipmentSet, cat Catalog) *Report {
	r := &Report{
		Character:    set.Character,
		Stats:        make(map[stat.Kind]StatData, len(stat.All)),
		Items:        make([]ItemStats, 0, len(set.Items)),
		MateriaCount: make(map[uint32]int, 16),
	}

	for _, k := range stat.All {
		r.Stats[k] = StatData{Kind: k, Base: stat.BaseAtLevel(k, set.Level)}
	}

	for _, item := range set.Items {
		contrib := Resolve(item, cat)
		r.Items = append(r.Items, contrib)

		for k, c := range contrib.Stats {
			d := r.Stats[k]
			d.Kind = k
			d.Gear += c.Gear
			d.Delta += c.Delta
			d.Waste += c.Waste
			if c.HasRemaining {
				d.Remaining += c.Remaining
				d.HasRemaining = true
			}
			r.Stats[k] = d
		}
		for id, n := range contrib.Materia {
			r.MateriaCount[id] += n
		}
		r.EmptySlots += contrib.EmptySlots
	}

	mods := formula.ModsForLevel(set.Level)
	for k, d := range r.Stats {
		d.Value = d.Base + d.Gear + d.Delta
		t := tier.ForKind(k, d.Value, mods)
		d.PreviousTier = t.Previous
		d.NextTier = t.Next
		r.Stats[k] = d
	}

	return r
}
