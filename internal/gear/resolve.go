package gear

import (
	"github.com/udisondev/gearset/internal/data"
	"github.com/udisondev/gearset/internal/stat"
)

// ItemStats is the contribution of a single item.
type ItemStats struct {
	Item  Item
	Def   data.Item
	Known bool // false when the catalog has no definition

	Stats      map[stat.Kind]StatData
	Materia    map[uint32]int // materia item id -> melded count
	EmptySlots int
}

// Stat returns the contribution to kind (zero value when none).
func (s ItemStats) Stat(kind stat.Kind) StatData {
	if d, ok := s.Stats[kind]; ok {
		return d
	}
	return StatData{Kind: kind}
}

// meldAcc carries the running meld totals of one item.
type meldAcc struct {
	delta map[stat.Kind]int
	waste map[stat.Kind]int
}

// Resolve computes what one item adds to each stat.
// Melds are applied in slot order: once gear+delta reaches the item's cap
// for a stat, the rest of the current meld and every later meld of that
// stat is waste.
func Resolve(item Item, cat Catalog) ItemStats {
	out := ItemStats{
		Item:    item,
		Stats:   make(map[stat.Kind]StatData, 8),
		Materia: make(map[uint32]int, MaxMelds),
	}

	def, ok := cat.Item(item.ID)
	if !ok {
		return out
	}
	out.Def = def
	out.Known = true

	gear := make(map[stat.Kind]int, len(def.Stats))
	for _, k := range def.Granted(item.HighQuality) {
		gear[k] = def.Grant(k, item.HighQuality)
	}

	acc := meldAcc{
		delta: make(map[stat.Kind]int, MaxMelds),
		waste: make(map[stat.Kind]int, MaxMelds),
	}
	for i, slot := range item.Melds {
		if slot.Empty() {
			if i < def.MateriaSlots {
				out.EmptySlots++
			}
			continue
		}
		m, ok := resolveMateria(cat, slot)
		if !ok {
			continue
		}
		out.Materia[m.ItemID]++
		acc = acc.meld(cat, def, gear, m)
	}

	kinds := make(map[stat.Kind]struct{}, len(gear)+len(acc.delta)+len(acc.waste))
	for k := range gear {
		kinds[k] = struct{}{}
	}
	for k := range acc.delta {
		kinds[k] = struct{}{}
	}
	for k := range acc.waste {
		kinds[k] = struct{}{}
	}

	for k := range kinds {
		d := StatData{
			Kind:  k,
			Gear:  gear[k],
			Delta: acc.delta[k],
			Waste: acc.waste[k],
		}
		d.Value = d.Gear + d.Delta
		if limit, capped := cat.MeldCap(def, k); capped {
			d.Remaining = limit - d.Value
			d.HasRemaining = true
		}
		out.Stats[k] = d
	}

	return out
}

// resolveMateria looks up a melded materia. Grade 0 never contributes.
func resolveMateria(cat Catalog, slot MateriaSlot) (data.Materia, bool) {
	if slot.Grade == 0 {
		return data.Materia{}, false
	}
	m, ok := cat.Materia(slot.ID, slot.Grade)
	if !ok || m.Value <= 0 {
		return data.Materia{}, false
	}
	return m, true
}

// meld applies one materia and returns the updated accumulator.
func (a meldAcc) meld(cat Catalog, def data.Item, gear map[stat.Kind]int, m data.Materia) meldAcc {
	k := m.Stat
	add := m.Value

	if limit, capped := cat.MeldCap(def, k); capped {
		room := limit - gear[k] - a.delta[k]
		if room < 0 {
			room = 0
		}
		if add > room {
			add = room
		}
	}

	if add > 0 {
		a.delta[k] += add
	}
	if lost := m.Value - add; lost > 0 {
		a.waste[k] += lost
	}
	return a
}
