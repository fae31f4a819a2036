package gear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/gearset/internal/data"
	"github.com/udisondev/gearset/internal/stat"
)

const (
	itemRing        = 100 // DET 10, explicit DET cap 30, 2 slots
	itemSword       = 101 // STR 100, CRT 50, uncapped
	itemCoat        = 102 // CRT 40 (+10 HQ), cap via item level
	materiaDet      = 7
	materiaCrit     = 8
	materiaDetItem  = 5007
	materiaCritItem = 5008
)

func newTestCatalog(t *testing.T) *data.Catalog {
	t.Helper()
	cat := data.NewCatalog()

	require.NoError(t, cat.AddItem(data.Item{
		ID:           itemRing,
		Name:         "Test Ring",
		MateriaSlots: 2,
		Stats:        map[stat.Kind]int{stat.DET: 10},
		Caps:         map[stat.Kind]int{stat.DET: 30},
	}))
	require.NoError(t, cat.AddItem(data.Item{
		ID:           itemSword,
		Name:         "Test Sword",
		MateriaSlots: 2,
		Stats:        map[stat.Kind]int{stat.STR: 100, stat.CRT: 50},
	}))
	require.NoError(t, cat.AddItem(data.Item{
		ID:           itemCoat,
		Name:         "Test Coat",
		ItemLevel:    600,
		Slot:         "body",
		MateriaSlots: 1,
		Stats:        map[stat.Kind]int{stat.CRT: 40},
		HQStats:      map[stat.Kind]int{stat.CRT: 10},
	}))
	cat.SetItemLevel(600, map[stat.Kind]int{stat.CRT: 80})
	cat.SetSlotScale("body", map[stat.Kind]int{stat.CRT: 1000})

	require.NoError(t, cat.AddMateria(data.Materia{ID: materiaDet, Grade: 1, ItemID: materiaDetItem, Stat: stat.DET, Value: 12}))
	require.NoError(t, cat.AddMateria(data.Materia{ID: materiaCrit, Grade: 1, ItemID: materiaCritItem, Stat: stat.CRT, Value: 36}))
	return cat
}

func melds(slots ...MateriaSlot) [MaxMelds]MateriaSlot {
	var out [MaxMelds]MateriaSlot
	copy(out[:], slots)
	return out
}

func TestResolve_NoMelds(t *testing.T) {
	cat := newTestCatalog(t)

	got := Resolve(Item{ID: itemSword}, cat)

	require.True(t, got.Known)
	str := got.Stat(stat.STR)
	assert.Equal(t, 100, str.Gear)
	assert.Zero(t, str.Delta)
	assert.Zero(t, str.Waste)
	assert.Equal(t, 100, str.Value)
	assert.False(t, str.HasRemaining, "sword has no caps")
	assert.Equal(t, 2, got.EmptySlots)
	assert.Empty(t, got.Materia)
}

func TestResolve_CapRedirectsExcessToWaste(t *testing.T) {
	cat := newTestCatalog(t)
	det := MateriaSlot{ID: materiaDet, Grade: 1}

	got := Resolve(Item{ID: itemRing, Melds: melds(det, det)}, cat)

	d := got.Stat(stat.DET)
	assert.Equal(t, 10, d.Gear)
	assert.Equal(t, 20, d.Delta)
	assert.Equal(t, 4, d.Waste)
	assert.Equal(t, 30, d.Gear+d.Delta, "capped exactly")
	assert.Equal(t, 24, d.Delta+d.Waste, "every melded point is accounted for")
	assert.True(t, d.HasRemaining)
	assert.Zero(t, d.Remaining)
	assert.Equal(t, 2, got.Materia[materiaDetItem])
	assert.Zero(t, got.EmptySlots)
}

func TestMeldAcc_SlotOrder(t *testing.T) {
	cat := newTestCatalog(t)
	ring, _ := cat.Item(itemRing)
	m, _ := cat.Materia(materiaDet, 1)
	gear := map[stat.Kind]int{stat.DET: 10}

	acc := meldAcc{delta: map[stat.Kind]int{}, waste: map[stat.Kind]int{}}

	acc = acc.meld(cat, ring, gear, m)
	assert.Equal(t, 12, acc.delta[stat.DET])
	assert.Zero(t, acc.waste[stat.DET])

	acc = acc.meld(cat, ring, gear, m)
	assert.Equal(t, 20, acc.delta[stat.DET], "second meld only fills the remaining 8")
	assert.Equal(t, 4, acc.waste[stat.DET])

	acc = acc.meld(cat, ring, gear, m)
	assert.Equal(t, 20, acc.delta[stat.DET])
	assert.Equal(t, 16, acc.waste[stat.DET], "third meld is wasted entirely")
}

func TestResolve_HighQuality(t *testing.T) {
	cat := newTestCatalog(t)
	crit := MateriaSlot{ID: materiaCrit, Grade: 1}

	nq := Resolve(Item{ID: itemCoat, Melds: melds(crit)}, cat)
	hq := Resolve(Item{ID: itemCoat, HighQuality: true, Melds: melds(crit)}, cat)

	// cap 80: NQ 40+36 fits, HQ 50+30 leaves 6 wasted
	assert.Equal(t, StatData{Kind: stat.CRT, Gear: 40, Delta: 36, Value: 76, Remaining: 4, HasRemaining: true}, nq.Stat(stat.CRT))
	assert.Equal(t, StatData{Kind: stat.CRT, Gear: 50, Delta: 30, Waste: 6, Value: 80, Remaining: 0, HasRemaining: true}, hq.Stat(stat.CRT))
}

func TestResolve_UnknownMateria(t *testing.T) {
	cat := newTestCatalog(t)

	got := Resolve(Item{ID: itemSword, Melds: melds(MateriaSlot{ID: 999, Grade: 1})}, cat)

	for _, k := range stat.All {
		d := got.Stat(k)
		if k == stat.STR || k == stat.CRT {
			assert.Zero(t, d.Delta, k.Abbrev())
			assert.Zero(t, d.Waste, k.Abbrev())
			continue
		}
		assert.Zero(t, d.Gear+d.Delta+d.Waste, k.Abbrev())
	}
	assert.Equal(t, 1, got.EmptySlots, "unknown materia occupies its slot")
	assert.Empty(t, got.Materia)
}

func TestResolve_ZeroGrade(t *testing.T) {
	cat := newTestCatalog(t)

	got := Resolve(Item{ID: itemRing, Melds: melds(MateriaSlot{ID: materiaDet, Grade: 0})}, cat)

	assert.Zero(t, got.Stat(stat.DET).Delta)
	assert.Equal(t, 1, got.EmptySlots)
}

func TestResolve_UnknownItem(t *testing.T) {
	cat := newTestCatalog(t)

	got := Resolve(Item{ID: 4242, Melds: melds(MateriaSlot{ID: materiaDet, Grade: 1})}, cat)

	assert.False(t, got.Known)
	assert.Empty(t, got.Stats)
	assert.Empty(t, got.Materia)
	assert.Zero(t, got.EmptySlots)
}

func TestRecalculate_Level90SingleItem(t *testing.T) {
	cat := newTestCatalog(t)
	set := NewEquipmentSet(Character{Level: 90}, []Item{{ID: itemSword}})

	r := Recalculate(set, cat)

	str := r.Stat(stat.STR)
	assert.Equal(t, 390, str.Base)
	assert.Equal(t, 100, str.Gear)
	assert.Zero(t, str.Delta)
	assert.Zero(t, str.Waste)
	assert.Equal(t, 490, str.Value)

	assert.Equal(t, 400, r.Stat(stat.GP).Base)
	assert.Equal(t, 180, r.Stat(stat.CP).Value)
	assert.Equal(t, 390, r.Stat(stat.DET).Value)
	assert.Len(t, r.Items, 1)
	assert.Equal(t, 2, r.EmptySlots)
}

func TestRecalculate_AggregatesAcrossItems(t *testing.T) {
	cat := newTestCatalog(t)
	det := MateriaSlot{ID: materiaDet, Grade: 1}
	crit := MateriaSlot{ID: materiaCrit, Grade: 1}

	set := NewEquipmentSet(Character{Level: 90}, []Item{
		{ID: itemRing, Melds: melds(det, det)},
		{ID: itemSword, Melds: melds(crit, det)},
		{ID: itemCoat, HighQuality: true, Melds: melds(crit)},
	})

	r := Recalculate(set, cat)

	d := r.Stat(stat.DET)
	assert.Equal(t, 10, d.Gear)
	assert.Equal(t, 32, d.Delta, "ring 20 + uncapped sword 12")
	assert.Equal(t, 4, d.Waste)
	assert.Equal(t, 390+10+32, d.Value)

	c := r.Stat(stat.CRT)
	assert.Equal(t, 100, c.Gear)
	assert.Equal(t, 66, c.Delta)
	assert.Equal(t, 6, c.Waste)
	assert.Equal(t, 400+100+66, c.Value)

	assert.Equal(t, map[uint32]int{materiaDetItem: 3, materiaCritItem: 2}, r.MateriaCount)
	assert.Equal(t, []uint32{materiaDetItem, materiaCritItem}, r.MateriaIDs())
	assert.Zero(t, r.EmptySlots)
}

func TestRecalculate_OrderIndependent(t *testing.T) {
	cat := newTestCatalog(t)
	det := MateriaSlot{ID: materiaDet, Grade: 1}
	crit := MateriaSlot{ID: materiaCrit, Grade: 1}
	items := []Item{
		{ID: itemRing, Melds: melds(det, det)},
		{ID: itemSword, Melds: melds(crit)},
		{ID: itemCoat, Melds: melds(crit)},
	}
	reversed := []Item{items[2], items[1], items[0]}

	a := Recalculate(NewEquipmentSet(Character{Level: 80}, items), cat)
	b := Recalculate(NewEquipmentSet(Character{Level: 80}, reversed), cat)

	assert.Equal(t, a.Stats, b.Stats)
	assert.Equal(t, a.MateriaCount, b.MateriaCount)
	assert.Equal(t, a.EmptySlots, b.EmptySlots)
}

func TestRecalculate_Tiers(t *testing.T) {
	cat := newTestCatalog(t)
	r := Recalculate(NewEquipmentSet(Character{Level: 90}, nil), cat)

	crt := r.Stat(stat.CRT)
	assert.Equal(t, 400, crt.Value)
	assert.Zero(t, crt.PreviousTier, "baseline sits on a breakpoint")
	assert.Equal(t, 10, crt.NextTier)

	str := r.Stat(stat.STR)
	assert.Zero(t, str.PreviousTier)
	assert.Zero(t, str.NextTier)
}

func TestRecalculate_OrderedRows(t *testing.T) {
	cat := newTestCatalog(t)
	r := Recalculate(NewEquipmentSet(Character{Level: 90}, nil), cat)

	rows := r.Ordered()
	require.Len(t, rows, len(stat.All))
	for i, k := range stat.All {
		assert.Equal(t, k, rows[i].Kind)
	}
}

func TestNewEquipmentSet_CopiesItems(t *testing.T) {
	items := []Item{{ID: itemSword}}
	set := NewEquipmentSet(Character{Level: 90}, items)

	items[0].ID = itemRing
	assert.Equal(t, uint32(itemSword), set.Items[0].ID)
}

func TestCompact(t *testing.T) {
	got := Compact([]Item{{ID: 0}, {ID: 5}, {ID: 0}, {ID: 6}})
	assert.Equal(t, []Item{{ID: 5}, {ID: 6}}, got)
}
